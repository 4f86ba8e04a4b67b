// Package redaction masks credentials before they reach log output.
// Dialogue text is logged in debug mode, so only secrets are targeted;
// names, numbers and other script content pass through untouched.
package redaction

import (
	"regexp"
	"strings"
	"sync"
)

// Config holds redaction configuration.
type Config struct {
	// Enabled controls whether redaction is active.
	Enabled bool `json:"enabled"`

	// CustomPatterns allows additional regex patterns to redact.
	CustomPatterns []string `json:"custom_patterns"`

	// Replacement is the string used to replace sensitive data.
	Replacement string `json:"replacement"`
}

// DefaultConfig returns the default redaction configuration.
func DefaultConfig() Config {
	return Config{
		Enabled:     true,
		Replacement: "[REDACTED]",
	}
}

// Redactor provides sensitive data redaction capabilities.
type Redactor struct {
	config  Config
	builtin []pattern
	custom  []*regexp.Regexp
	mu      sync.RWMutex
}

// pattern redacts capture group `group` of re; group 0 replaces the whole match.
type pattern struct {
	re    *regexp.Regexp
	group int
}

var builtinPatterns = []struct {
	expr  string
	group int
}{
	{`(?i)(xi[_-]api[_-]key|api[_-]?key|apikey)\s*[=:]\s*['"]?([a-zA-Z0-9_\-]{16,})['"]?`, 2},
	{`(?i)bearer\s+([a-zA-Z0-9_\-\.]{20,})`, 1},
	{`"(?:api_key|apikey|xi-api-key|secret|token)"\s*:\s*"([^"]+)"`, 1},
	{`\bsk_[a-f0-9]{32,}\b`, 0},
}

// NewRedactor creates a new Redactor with the given configuration.
// Custom patterns that fail to compile are ignored.
func NewRedactor(config Config) *Redactor {
	r := &Redactor{config: config}
	for _, p := range builtinPatterns {
		r.builtin = append(r.builtin, pattern{re: regexp.MustCompile(p.expr), group: p.group})
	}
	for _, p := range config.CustomPatterns {
		if re, err := regexp.Compile(p); err == nil {
			r.custom = append(r.custom, re)
		}
	}
	return r
}

// Redact applies all redaction rules to the input string.
func (r *Redactor) Redact(input string) string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.config.Enabled {
		return input
	}

	result := input
	for _, p := range r.builtin {
		result = r.replaceGroup(p, result)
	}
	for _, re := range r.custom {
		result = re.ReplaceAllString(result, r.config.Replacement)
	}
	return result
}

// replaceGroup redacts only the value group of each match so the
// surrounding key name stays readable.
func (r *Redactor) replaceGroup(p pattern, input string) string {
	return p.re.ReplaceAllStringFunc(input, func(match string) string {
		if p.group == 0 {
			return r.config.Replacement
		}
		sub := p.re.FindStringSubmatch(match)
		if len(sub) <= p.group || sub[p.group] == "" {
			return match
		}
		return strings.Replace(match, sub[p.group], r.config.Replacement, 1)
	})
}

// RedactFields redacts sensitive values in a map.
func (r *Redactor) RedactFields(fields map[string]any) map[string]any {
	r.mu.RLock()
	enabled := r.config.Enabled
	replacement := r.config.Replacement
	r.mu.RUnlock()

	if !enabled {
		return fields
	}

	result := make(map[string]any, len(fields))
	for k, v := range fields {
		if isSensitiveKey(strings.ToLower(k)) {
			result[k] = replacement
			continue
		}
		switch val := v.(type) {
		case string:
			result[k] = r.Redact(val)
		case map[string]any:
			result[k] = r.RedactFields(val)
		default:
			result[k] = v
		}
	}
	return result
}

func isSensitiveKey(key string) bool {
	for _, sk := range []string{"api_key", "apikey", "xi-api-key", "secret", "token", "credential", "password"} {
		if strings.Contains(key, sk) {
			return true
		}
	}
	return false
}

// SetEnabled enables or disables redaction at runtime.
func (r *Redactor) SetEnabled(enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.config.Enabled = enabled
}

var (
	globalMu       sync.RWMutex
	globalRedactor = NewRedactor(DefaultConfig())
)

// Redact applies redaction using the global redactor.
func Redact(input string) string {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalRedactor.Redact(input)
}

// RedactFields redacts fields using the global redactor.
func RedactFields(fields map[string]any) map[string]any {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return globalRedactor.RedactFields(fields)
}

// SetGlobalConfig sets the configuration for the global redactor.
func SetGlobalConfig(config Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalRedactor = NewRedactor(config)
}
