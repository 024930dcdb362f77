package common

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadYaml loads Yaml file into out
func LoadYaml(filename string, out interface{}) error {
	yamlData, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("yaml os.ReadFile %w", err)
	}
	return ParseYaml(yamlData, out)
}

// ParseYaml unmarshals yaml data into out
func ParseYaml(yamlData []byte, out interface{}) error {
	if err := yaml.Unmarshal(yamlData, out); err != nil {
		return fmt.Errorf("yaml.Unmarshal %w", err)
	}
	return nil
}

// YamlObjectAsString outputs contents of yaml object with a label
func YamlObjectAsString(in interface{}, label string) string {
	d, err := yaml.Marshal(in)
	if err != nil {
		log.Fatalf("error: yaml.Marshal %v", err)
	}
	return fmt.Sprintf("=== %s ===\n%s\n\n", label, string(d))
}
