package database

type Setting struct {
	Name    string `gorm:"primaryKey"`
	Value   string
	Default string
}

func NewSetting(name string, defaultValue string) Setting {
	return Setting{
		Name:    name,
		Value:   defaultValue,
		Default: defaultValue,
	}
}
