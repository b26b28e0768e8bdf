package config

// Test accessors

func (a *AppConfig) SetPolicyPath(path string) {
	a.policyPath = path
}

func (r *Repository) SetBackend(backend string) {
	r.backend = backend
}

func (x *Logger) SetLevel(level string) {
	x.level = level
}

func (x *Logger) SetFormat(format string) {
	x.format = format
}

func (a *Authn) SetNoAuth(enabled bool) {
	a.noAuth = enabled
}
