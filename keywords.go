package sshconf

import (
	"fmt"
	"strings"
	"sync"
)

// the word "host" comes up often enough to warrant a constant.
const fkHost = "host"

// validKeywords lists the keywords recognized by the OpenSSH client in their
// canonical spelling. Host and Match are part of the table because they are
// valid words of the dialect, but Normalize refuses them since they structure
// the configuration instead of carrying a value.
var validKeywords = []string{
	"Host",
	"Match",
	"AddKeysToAgent",
	"AddressFamily",
	"BatchMode",
	"BindAddress",
	"BindInterface",
	"CanonicalDomains",
	"CanonicalizeFallbackLocal",
	"CanonicalizeHostname",
	"CanonicalizeMaxDots",
	"CanonicalizePermittedCNAMEs",
	"CASignatureAlgorithms",
	"CertificateFile",
	"ChallengeResponseAuthentication",
	"CheckHostIP",
	"Ciphers",
	"ClearAllForwardings",
	"Compression",
	"ConnectionAttempts",
	"ConnectTimeout",
	"ControlMaster",
	"ControlPath",
	"ControlPersist",
	"DynamicForward",
	"EnableSSHKeysign",
	"EscapeChar",
	"ExitOnForwardFailure",
	"FingerprintHash",
	"ForwardAgent",
	"ForwardX11",
	"ForwardX11Timeout",
	"ForwardX11Trusted",
	"GatewayPorts",
	"GlobalKnownHostsFile",
	"GSSAPIAuthentication",
	"GSSAPIClientIdentity",
	"GSSAPIDelegateCredentials",
	"GSSAPIKeyExchange",
	"GSSAPIRenewalForcesRekey",
	"GSSAPIServerIdentity",
	"GSSAPITrustDns",
	"GSSAPIKexAlgorithms",
	"HashKnownHosts",
	"HostbasedAuthentication",
	"HostbasedKeyTypes",
	"HostKeyAlgorithms",
	"HostKeyAlias",
	"Hostname",
	"IdentitiesOnly",
	"IdentityAgent",
	"IdentityFile",
	"IgnoreUnknown",
	"Include",
	"IPQoS",
	"KbdInteractiveAuthentication",
	"KbdInteractiveDevices",
	"KexAlgorithms",
	"LocalCommand",
	"LocalForward",
	"LogLevel",
	"MACs",
	"NoHostAuthenticationForLocalhost",
	"NumberOfPasswordPrompts",
	"PasswordAuthentication",
	"PermitLocalCommand",
	"PKCS11Provider",
	"Port",
	"PreferredAuthentications",
	"ProxyCommand",
	"ProxyJump",
	"ProxyUseFdpass",
	"PubkeyAcceptedKeyTypes",
	"PubkeyAuthentication",
	"RekeyLimit",
	"RemoteCommand",
	"RemoteForward",
	"RequestTTY",
	"RevokedHostKeys",
	"SecurityKeyProvider",
	"SendEnv",
	"ServerAliveCountMax",
	"ServerAliveInterval",
	"SetEnv",
	"StreamLocalBindMask",
	"StreamLocalBindUnlink",
	"StrictHostKeyChecking",
	"SyslogFacility",
	"TCPKeepAlive",
	"Tunnel",
	"TunnelDevice",
	"UpdateHostKeys",
	"User",
	"UserKnownHostsFile",
	"VerifyHostKeyDNS",
	"VisualHostKey",
	"XAuthLocation",
}

var keywordCase = sync.OnceValue(func() map[string]string {
	m := make(map[string]string, len(validKeywords))
	for _, keyword := range validKeywords {
		m[strings.ToLower(keyword)] = keyword
	}
	return m
})

// Normalize returns the canonical spelling of a configuration keyword.
// Unknown keywords fail with [ErrInvalidKeyword], as do Host and Match,
// which can never be used as data keywords.
func Normalize(name string) (string, error) {
	lower := strings.ToLower(name)
	if lower == fkHost || lower == "match" {
		return "", fmt.Errorf("%w: %s", ErrInvalidKeyword, name)
	}
	canonical, ok := keywordCase()[lower]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidKeyword, name)
	}
	return canonical, nil
}
