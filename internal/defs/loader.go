// internal/defs/loader.go
package defs

import (
	"embed"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed data/*.json
var defaultData embed.FS

//go:embed schema/aliens.schema.json
var alienSchemaSource string

//go:embed schema/obstacles.schema.json
var obstacleSchemaSource string

// LoadDefaults populates both libraries from the definitions built into the binary.
func LoadDefaults() error {
	aliens, err := defaultData.ReadFile("data/aliens.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded alien definitions: %w", err)
	}
	if err := ParseAlienDefinitions(aliens); err != nil {
		return err
	}
	obstacles, err := defaultData.ReadFile("data/obstacles.json")
	if err != nil {
		return fmt.Errorf("failed to read embedded obstacle definitions: %w", err)
	}
	return ParseObstacleDefinitions(obstacles)
}

// LoadAlienDefinitions reads the alien configuration file and populates the AlienLibrary.
func LoadAlienDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read alien definitions file: %w", err)
	}
	return ParseAlienDefinitions(file)
}

// LoadObstacleDefinitions reads the obstacle configuration file and populates the ObstacleLibrary.
func LoadObstacleDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read obstacle definitions file: %w", err)
	}
	return ParseObstacleDefinitions(file)
}

func ParseAlienDefinitions(data []byte) error {
	if err := validate("aliens.schema.json", alienSchemaSource, data); err != nil {
		return fmt.Errorf("invalid alien definitions: %w", err)
	}
	var alienDefs []AlienDefinition
	if err := json.Unmarshal(data, &alienDefs); err != nil {
		return fmt.Errorf("failed to unmarshal alien definitions: %w", err)
	}

	AlienLibrary = make(map[string]AlienDefinition, len(alienDefs))
	for _, def := range alienDefs {
		AlienLibrary[def.ID] = def
	}

	log.Printf("Loaded %d alien definitions", len(AlienLibrary))
	return nil
}

func ParseObstacleDefinitions(data []byte) error {
	if err := validate("obstacles.schema.json", obstacleSchemaSource, data); err != nil {
		return fmt.Errorf("invalid obstacle definitions: %w", err)
	}
	var obstacleDefs []ObstacleDefinition
	if err := json.Unmarshal(data, &obstacleDefs); err != nil {
		return fmt.Errorf("failed to unmarshal obstacle definitions: %w", err)
	}

	ObstacleLibrary = make(map[string]ObstacleDefinition, len(obstacleDefs))
	for _, def := range obstacleDefs {
		ObstacleLibrary[def.ID] = def
	}

	log.Printf("Loaded %d obstacle definitions", len(ObstacleLibrary))
	return nil
}

func validate(name, source string, data []byte) error {
	schema, err := jsonschema.CompileString("mem://defs/"+name, source)
	if err != nil {
		return fmt.Errorf("compile %s: %w", name, err)
	}
	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	return schema.Validate(doc)
}
