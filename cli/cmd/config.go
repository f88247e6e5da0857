package cmd

import (
	"errors"
	"fmt"
	"os"
	"path"

	"gopkg.in/yaml.v3"

	"github.com/TheMaverickProgrammer/go-yes-parser/yesparser"
)

// LiteralConfig is one user-defined literal span pair in yescode.yaml.
// Begin and End must each be a single non-reserved character.
type LiteralConfig struct {
	Begin string `yaml:"begin"`
	End   string `yaml:"end"`
}

type Config struct {
	Literals []LiteralConfig `yaml:"literals"`
}

// LoadConfig reads yescode.yaml from the --directory directory. A missing
// file is not an error; custom literals are optional.
func LoadConfig() (Config, error) {
	var result Config

	configFilename := path.Join(directory, "yescode.yaml")
	if _, err := os.Stat(configFilename); os.IsNotExist(err) {
		return Config{}, nil
	}

	yamlFile, err := os.ReadFile(configFilename)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(yamlFile, &result)
	if err != nil {
		return Config{}, err
	}
	return result, nil
}

// LiteralSet validates the configured pairs and converts them for the
// parser.
func (c Config) LiteralSet() ([]yesparser.Literal, error) {
	var out []yesparser.Literal
	for _, lc := range c.Literals {
		if len(lc.Begin) != 1 || len(lc.End) != 1 {
			return nil, errors.New(fmt.Sprintf("literal pair %q..%q: begin and end must each be one character", lc.Begin, lc.End))
		}
		l, err := yesparser.NewLiteral(lc.Begin[0], lc.End[0])
		if err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, nil
}
