package electrician

import (
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"strings"
)

// RelayOptions configures the forward relay that carries roster events.
//
//	ELECTRICIAN_TARGET          = "host:port[,host2:port2]"   (unset: noop relay)
//	ELECTRICIAN_TLS_ENABLE      = "true" | "false"
//	ELECTRICIAN_TLS_CLIENT_CRT  = path (default: keys/tls/client.crt)
//	ELECTRICIAN_TLS_CLIENT_KEY  = path (default: keys/tls/client.key)
//	ELECTRICIAN_TLS_CA          = path (default: keys/tls/ca.crt)
//	ELECTRICIAN_COMPRESS        = "snappy" | ""
//	ELECTRICIAN_ENCRYPT         = "aesgcm" | ""
//	ELECTRICIAN_AES256_KEY_HEX  = 64 hex chars (required with aesgcm)
//	ELECTRICIAN_STATIC_HEADERS  = "k=v,k2=v2"
type RelayOptions struct {
	Targets []string

	TLSEnable    bool
	TLSClientCrt string
	TLSClientKey string
	TLSCA        string

	CompressSnappy bool
	EncryptAESGCM  bool
	AESKey         []byte // 32 bytes

	StaticHeaders map[string]string
}

// Enabled reports whether a relay target is configured.
func (o RelayOptions) Enabled() bool { return len(o.Targets) > 0 }

func LoadRelayOptionsFromEnv() (RelayOptions, error) {
	opt := RelayOptions{
		Targets:        splitCSV(os.Getenv("ELECTRICIAN_TARGET")),
		TLSEnable:      strings.EqualFold(os.Getenv("ELECTRICIAN_TLS_ENABLE"), "true"),
		TLSClientCrt:   getenv("ELECTRICIAN_TLS_CLIENT_CRT", "keys/tls/client.crt"),
		TLSClientKey:   getenv("ELECTRICIAN_TLS_CLIENT_KEY", "keys/tls/client.key"),
		TLSCA:          getenv("ELECTRICIAN_TLS_CA", "keys/tls/ca.crt"),
		CompressSnappy: strings.EqualFold(os.Getenv("ELECTRICIAN_COMPRESS"), "snappy"),
		EncryptAESGCM:  strings.EqualFold(os.Getenv("ELECTRICIAN_ENCRYPT"), "aesgcm"),
		StaticHeaders:  parseHeaders(os.Getenv("ELECTRICIAN_STATIC_HEADERS")),
	}

	if k := strings.TrimSpace(os.Getenv("ELECTRICIAN_AES256_KEY_HEX")); k != "" {
		raw, err := hex.DecodeString(k)
		if err != nil {
			return RelayOptions{}, fmt.Errorf("ELECTRICIAN_AES256_KEY_HEX: %w", err)
		}
		if len(raw) != 32 {
			return RelayOptions{}, errors.New("ELECTRICIAN_AES256_KEY_HEX must decode to 32 bytes")
		}
		opt.AESKey = raw
	}
	if opt.EncryptAESGCM && len(opt.AESKey) == 0 {
		return RelayOptions{}, errors.New("ELECTRICIAN_ENCRYPT=aesgcm requires ELECTRICIAN_AES256_KEY_HEX")
	}
	return opt, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func splitCSV(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if x := strings.TrimSpace(p); x != "" {
			out = append(out, x)
		}
	}
	return out
}

func parseHeaders(s string) map[string]string {
	if s == "" {
		return nil
	}
	out := map[string]string{}
	for _, kv := range strings.Split(s, ",") {
		kv = strings.TrimSpace(kv)
		if kv == "" {
			continue
		}
		p := strings.SplitN(kv, "=", 2)
		if len(p) == 2 {
			out[strings.TrimSpace(p[0])] = strings.TrimSpace(p[1])
		}
	}
	return out
}
