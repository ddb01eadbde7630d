package extract

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/dtnitsch/biblesources/internal/common"
	"github.com/dtnitsch/biblesources/models"
	"github.com/dtnitsch/biblesources/pkg/extractor"
	"github.com/dtnitsch/biblesources/pkg/license"
)

// Output is what the extract command prints.
type Output struct {
	File     string                 `yaml:"file"`
	NotFound bool                   `yaml:"not_found,omitempty"`
	Record   *models.MetadataRecord `yaml:"record,omitempty"`
}

// ExtractAction runs the extractor on local documents ("-" reads stdin) and prints the records as YAML.
func ExtractAction(c *cli.Context) error {
	if c.NArg() == 0 {
		return cli.Exit("Error: No file provided\n\nUsage:\n  biblesources extract raw/info/eng_webp.html", 1)
	}

	config, err := common.LoadConfig(c)
	if err != nil {
		return err
	}
	ext := extractor.New(license.Default().Extend(config.Licenses), extractor.Options{NotFoundMarker: config.NotFoundMarker})

	var outputs []Output
	for _, path := range c.Args().Slice() {
		doc, err := readDocument(path)
		if err != nil {
			return err
		}
		outputs = append(outputs, Run(ext, path, doc))
	}

	data, err := yaml.Marshal(outputs)
	if err != nil {
		return fmt.Errorf("error marshalling output: %w", err)
	}
	fmt.Print(string(data))
	return nil
}

// Run extracts one document.
func Run(ext *extractor.Extractor, name, doc string) Output {
	out := Output{File: name}
	rec, ok := ext.Extract(doc)
	if !ok {
		out.NotFound = true
		return out
	}
	out.Record = &rec
	return out
}

func readDocument(path string) (string, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read document %s: %w", path, err)
	}
	return string(data), nil
}
