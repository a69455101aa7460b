package config

// File represents the structure of the crossgrade.yaml configuration file.
type File struct {
	Version int                  `yaml:"version"`
	Source  string               `yaml:"source"`
	Target  string               `yaml:"target"`
	Cache   CacheDTO             `yaml:"cache"`
	Lookup  LookupDTO            `yaml:"lookup"`
	Targets map[string]DistroDTO `yaml:"targets"`
}

// CacheDTO configures the resolution cache. Durations are Go duration
// strings.
type CacheDTO struct {
	Dir string `yaml:"dir"`
	TTL string `yaml:"ttl"`
}

// LookupDTO configures the lookup service client.
type LookupDTO struct {
	BaseURL     string `yaml:"base_url"`
	MinInterval string `yaml:"min_interval"`
	Contact     string `yaml:"contact"`
}

// DistroDTO extends or overrides one entry of the built-in distribution
// table. Unset fields inherit the built-in values when the ID matches one.
type DistroDTO struct {
	Family    string `yaml:"family"`
	Official  string `yaml:"official"`
	Community string `yaml:"community"`
}
