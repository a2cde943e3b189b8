package config

type App struct {
	Name     string `json:"name" yaml:"name"`
	Env      string `json:"env" yaml:"env"`
	Debug    bool   `json:"debug" yaml:"debug"`
	LogLevel string `json:"log_level" yaml:"log_level"`
}

type Server struct {
	Http        int      `json:"http" yaml:"http"`
	BasePath    string   `json:"base_path" yaml:"base_path"`
	CorsOrigins []string `json:"cors_origins" yaml:"cors_origins"`
}
