package sshconf_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/confkit/sshconf"
	"github.com/stretchr/testify/require"
)

func ExampleDumpString() {
	keywords := &sshconf.KeywordSet{}
	_ = keywords.Set("User", "demo")
	_ = keywords.Set("Port", "2222")

	config := &sshconf.Config{}
	config.Append(sshconf.NewHostBlock(sshconf.NewHostList("example.com"), keywords))

	fmt.Print(sshconf.DumpString(config))
	// Output:
	// Host example.com
	//     User demo
	//     Port 2222
}

// messyConfig has uneven indentation, extra blank lines and keywords before
// the first Host line.
const messyConfig = `ConnectTimeout 30
Host myhost.com !insecure.com
PreferredAuthentications publickey
User alice
 ForwardAgent no



Host myhost.net myhost.org
    User bob
    Port 23
Host *
User nouser
        ForwardX11 no

`

func TestDumpDefaultFormat(t *testing.T) {
	expected := `Host *
    ConnectTimeout 30

Host myhost.com !insecure.com
    PreferredAuthentications publickey
    User alice
    ForwardAgent no

Host myhost.net myhost.org
    User bob
    Port 23

Host *
    User nouser
    ForwardX11 no
`

	config, err := sshconf.ParseString(messyConfig)
	require.NoError(t, err)
	require.Equal(t, expected, sshconf.DumpString(config))
}

func TestDumpNoSeparatorLines(t *testing.T) {
	expected := `Host *
    ConnectTimeout 30
Host myhost.com !insecure.com
    PreferredAuthentications publickey
    User alice
    ForwardAgent no
Host myhost.net myhost.org
    User bob
    Port 23
Host *
    User nouser
    ForwardX11 no
`

	config, err := sshconf.ParseString(messyConfig)
	require.NoError(t, err)
	require.Equal(t, expected, sshconf.DumpString(config, sshconf.WithBlankLines(0)))
}

func TestDumpTabIndent(t *testing.T) {
	expected := "Host *\n\tConnectTimeout 30\n\n" +
		"Host myhost.com !insecure.com\n\tPreferredAuthentications publickey\n\tUser alice\n\tForwardAgent no\n\n" +
		"Host myhost.net myhost.org\n\tUser bob\n\tPort 23\n\n" +
		"Host *\n\tUser nouser\n\tForwardX11 no\n"

	config, err := sshconf.ParseString(messyConfig)
	require.NoError(t, err)
	require.Equal(t, expected, sshconf.DumpString(config, sshconf.WithIndent("\t")))
}

func TestDumpAlreadyFormatted(t *testing.T) {
	content := `Host myhost.com
    PreferredAuthentications publickey
    User myuser
    ForwardAgent no

Host myhost.net myhost.org
    User bob
    Port 23
`

	config, err := sshconf.ParseString(content)
	require.NoError(t, err)
	require.Equal(t, content, sshconf.DumpString(config), "a config in default format dumps byte-identically")
}

func TestDumpRoundTrip(t *testing.T) {
	config, err := sshconf.ParseString(messyConfig)
	require.NoError(t, err)

	dumped := sshconf.DumpString(config)
	reparsed, err := sshconf.ParseString(dumped)
	require.NoError(t, err)

	require.Equal(t, config, reparsed, "parsing a dump yields an equal configuration")
	require.Equal(t, dumped, sshconf.DumpString(reparsed), "a second dump is byte-identical")
}

func TestDumpRoundTripWithOptions(t *testing.T) {
	config, err := sshconf.ParseString(messyConfig)
	require.NoError(t, err)

	for _, opts := range [][]sshconf.DumpOption{
		{sshconf.WithIndent("\t")},
		{sshconf.WithBlankLines(0)},
		{sshconf.WithBlankLines(3), sshconf.WithIndent("  ")},
	} {
		reparsed, err := sshconf.ParseString(sshconf.DumpString(config, opts...))
		require.NoError(t, err)
		require.Equal(t, config, reparsed, "formatting options must not change the parsed content")
	}
}

func TestDumpToWriter(t *testing.T) {
	config, err := sshconf.ParseString(messyConfig)
	require.NoError(t, err)

	sb := &strings.Builder{}
	require.NoError(t, sshconf.Dump(sb, config))
	require.Equal(t, sshconf.DumpString(config), sb.String())
}
