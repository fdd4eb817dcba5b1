package sshconf_test

import (
	"testing"

	"github.com/confkit/sshconf"
	"github.com/stretchr/testify/require"
)

func TestConfigAppend(t *testing.T) {
	expected := `Host myhost.com
    PreferredAuthentications publickey
    User myuser
    ForwardAgent no

Host myhost.net myhost.org
    User bob
    Port 23
`

	config, err := sshconf.ParseString(`Host myhost.com
    PreferredAuthentications publickey
    User myuser
    ForwardAgent no`)
	require.NoError(t, err)

	keywords := &sshconf.KeywordSet{}
	require.NoError(t, keywords.Set("User", "bob"))
	require.NoError(t, keywords.Set("Port", "23"))
	config.Append(sshconf.NewHostBlock(sshconf.NewHostList("myhost.net", "myhost.org"), keywords))

	require.Equal(t, expected, sshconf.DumpString(config))
}

func TestConfigPrecedenceAcrossBlocks(t *testing.T) {
	config, err := sshconf.ParseString(`Host a.com
    User alice

Host *.com
    User bob
    Port 22
`)
	require.NoError(t, err)

	keywords, err := config.ForHost("a.com")
	require.NoError(t, err)

	user, err := keywords.Get("User")
	require.NoError(t, err)
	require.Equal(t, "alice", user, "the earlier block's value wins per keyword")

	port, err := keywords.Get("Port")
	require.NoError(t, err)
	require.Equal(t, "22", port, "the later block fills the gaps")
}

func TestConfigForHostNoMatch(t *testing.T) {
	config, err := sshconf.ParseString("Host myhost.com\n    User myuser\n")
	require.NoError(t, err)

	keywords, err := config.ForHost("other.example.net")
	require.NoError(t, err)
	require.NotNil(t, keywords)
	require.Zero(t, keywords.Len())

	blocks, err := config.MatchingBlocks("other.example.net")
	require.NoError(t, err)
	require.Empty(t, blocks)
}

func TestConfigQueryEmptyHostname(t *testing.T) {
	config, err := sshconf.ParseString("Host myhost.com\n    User myuser\n")
	require.NoError(t, err)

	_, err = config.ForHost("")
	require.ErrorIs(t, err, sshconf.ErrInvalidArgument)

	_, err = config.MatchingBlocks("")
	require.ErrorIs(t, err, sshconf.ErrInvalidArgument)
}

func TestConfigDuplicatePatternBlocksStaySeparate(t *testing.T) {
	config, err := sshconf.ParseString(`Host *
    User alice

Host *
    User bob
    Port 22
`)
	require.NoError(t, err)
	require.Equal(t, 2, config.Len(), "blocks with identical pattern lists are not merged")

	keywords, err := config.ForHost("anything")
	require.NoError(t, err)

	user, err := keywords.Get("User")
	require.NoError(t, err)
	require.Equal(t, "alice", user)

	port, err := keywords.Get("Port")
	require.NoError(t, err)
	require.Equal(t, "22", port)
}

func TestNewHostBlock(t *testing.T) {
	block := sshconf.NewHostBlock(sshconf.NewHostList("example.com"), nil)
	require.NotNil(t, block.Keywords)
	require.Zero(t, block.Keywords.Len())
}
