package config

// Taskfile represents the structure of the taskforge.yaml configuration file.
type Taskfile struct {
	Version string             `yaml:"version"`
	Tasks   map[string]TaskDTO `yaml:"tasks"`
}

// TaskDTO represents a task definition in the configuration.
type TaskDTO struct {
	Cmd         string            `yaml:"cmd"`
	Environment map[string]string `yaml:"environment"`
	Cache       bool              `yaml:"cache"`
	Walltime    string            `yaml:"walltime"`
	Executor    string            `yaml:"executor"`
	Files       []string          `yaml:"files"`
}
