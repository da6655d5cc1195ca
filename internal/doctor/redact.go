package doctor

import (
	"net/url"
	"strings"
)

// secretKeyFragments mark an environment key as sensitive. Matched
// case-insensitively anywhere in the key, so DDX_API_TOKEN and
// ddx_auth_key both hit.
var secretKeyFragments = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"PASSWD",
	"KEY",
	"AUTH",
	"CREDENTIAL",
	"PRIVATE",
}

// tokenPrefixes are well-known credential shapes that mark a value as
// sensitive even under an innocuous key.
var tokenPrefixes = []string{
	"ghp_",   // GitHub personal access token
	"gho_",   // GitHub OAuth token
	"ghs_",   // GitHub app token
	"glpat-", // GitLab personal access token
	"sk-",    // OpenAI/Anthropic keys
	"AKIA",   // AWS access key
	"xoxb-",  // Slack bot token
	"xoxp-",  // Slack user token
}

// Sensitive reports whether a key/value pair looks like a credential:
// the key carries a sensitive fragment or the value a known token
// prefix. The log handler consults it for every attribute it prints.
func Sensitive(key, value string) bool {
	return sensitiveKey(key) || hasTokenPrefix(value)
}

// MaskSecrets returns a copy of env safe to put in a report. Values
// under sensitive keys and values carrying a known token prefix are
// masked whole; other values that look like URLs keep their structure
// but lose any embedded password.
func MaskSecrets(env map[string]string) map[string]string {
	if env == nil {
		return nil
	}

	masked := make(map[string]string, len(env))
	for k, v := range env {
		switch {
		case Sensitive(k, v):
			masked[k] = Mask(v)
		case strings.Contains(v, "://"):
			masked[k] = maskURLPassword(v)
		default:
			masked[k] = v
		}
	}
	return masked
}

// Mask hides a sensitive value. Longer values keep a 4-character tail
// so operators can tell two tokens apart; anything short enough that a
// tail would give most of it away is masked whole.
func Mask(v string) string {
	if len(v) <= 8 {
		return "********"
	}
	return "****" + v[len(v)-4:]
}

// maskURLPassword redacts the password from a URL carrying embedded
// credentials (user:pass@host). Values that do not parse, carry no
// userinfo, or have an empty password come back unchanged.
func maskURLPassword(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.User == nil {
		return raw
	}
	pass, ok := parsed.User.Password()
	if !ok || pass == "" {
		return raw
	}
	parsed.User = url.UserPassword(parsed.User.Username(), Mask(pass))
	return parsed.String()
}

func sensitiveKey(key string) bool {
	upper := strings.ToUpper(key)
	for _, fragment := range secretKeyFragments {
		if strings.Contains(upper, fragment) {
			return true
		}
	}
	return false
}

func hasTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}
