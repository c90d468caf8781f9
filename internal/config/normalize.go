package config

import "strings"

// normalize trims string fields, applies defaults for empty values, and
// expands filesystem paths.
func (c *Config) normalize() error {
	c.Paths.RosterPath = strings.TrimSpace(c.Paths.RosterPath)
	c.Paths.LegislaturesPath = strings.TrimSpace(c.Paths.LegislaturesPath)
	c.Paths.StorePath = strings.TrimSpace(c.Paths.StorePath)
	if c.Paths.StorePath == "" {
		c.Paths.StorePath = Default().Paths.StorePath
	}

	for _, field := range []*string{&c.Paths.RosterPath, &c.Paths.LegislaturesPath, &c.Paths.StorePath} {
		if *field == "" {
			continue
		}
		expanded, err := expandPath(*field)
		if err != nil {
			return err
		}
		*field = expanded
	}

	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = "auto"
	}
	return nil
}
