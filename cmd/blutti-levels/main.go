// Command blutti-levels inspects Blutti level assets.
//
//	blutti-levels schema [-out file]
//	blutti-levels check <level files...>
//	blutti-levels preview <level file>
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/automoto/blutti/shared/leveldata"
	"github.com/invopop/jsonschema"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, "usage: blutti-levels schema|check|preview ...")
		return 2
	}

	var err error
	switch args[0] {
	case "schema":
		err = schemaCmd(args[1:], stdout)
	case "check":
		err = checkCmd(args[1:], stdout)
	case "preview":
		err = previewCmd(args[1:], stdout)
	default:
		err = fmt.Errorf("unknown command %q", args[0])
	}
	if err != nil {
		fmt.Fprintf(stderr, "blutti-levels: %v\n", err)
		return 1
	}
	return 0
}

func schemaCmd(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("schema", flag.ContinueOnError)
	var outPath string
	fs.StringVar(&outPath, "out", "", "path to write the JSON schema (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	data, err := json.MarshalIndent(buildSchema(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	data = append(data, '\n')

	if outPath == "" {
		_, err := stdout.Write(data)
		return err
	}
	return writeFile(outPath, data)
}

func buildSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: true,
	}
	schema := reflector.Reflect(new(leveldata.LevelData))
	schema.Title = "Blutti Level"
	schema.Description = "Validates exported level files in assets/levels"
	return schema
}

func writeFile(outPath string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create schema directory: %w", err)
	}

	tmpPath := outPath + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o644); err != nil {
		return fmt.Errorf("write temp schema: %w", err)
	}

	if err := os.Rename(tmpPath, outPath); err != nil {
		return fmt.Errorf("replace schema: %w", err)
	}
	return nil
}

func load(path string) (*leveldata.LevelData, error) {
	return leveldata.Load(os.DirFS(filepath.Dir(path)), filepath.Base(path))
}

var errCheckFailed = errors.New("check failed")

func checkCmd(paths []string, stdout io.Writer) error {
	if len(paths) == 0 {
		return errors.New("check needs at least one level file")
	}

	failed := 0
	for _, path := range paths {
		d, err := load(path)
		if err != nil {
			fmt.Fprintf(stdout, "FAIL %s: %v\n", path, err)
			failed++
			continue
		}
		problems := lint(d)
		if len(problems) == 0 {
			fmt.Fprintf(stdout, "ok   %s (%d monsters, %d stars)\n", path, len(d.Monsters), d.Stars)
			continue
		}
		failed++
		for _, p := range problems {
			fmt.Fprintf(stdout, "FAIL %s: %s\n", path, p)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%w: %d of %d levels", errCheckFailed, failed, len(paths))
	}
	return nil
}

// lint reports problems that decode fine but make a level unbeatable.
func lint(d *leveldata.LevelData) []string {
	var problems []string

	if !d.StartPosition.InScreen() {
		problems = append(problems, fmt.Sprintf("start %d,%d is off screen", d.StartPosition.X, d.StartPosition.Y))
	} else if idx, _ := d.StartPosition.TileIndex(); d.Collider(idx).Blocking() {
		problems = append(problems, "start is inside a wall")
	}

	exits, stars := 0, 0
	for i := range d.Tiles {
		switch d.Collider(i).Kind {
		case leveldata.ColliderExit:
			exits++
		case leveldata.ColliderStar:
			stars++
		}
	}
	if exits == 0 {
		problems = append(problems, "no exit")
	}
	if stars < d.Stars {
		problems = append(problems, fmt.Sprintf("needs %d stars but has %d", d.Stars, stars))
	}

	for i, m := range d.Monsters {
		if !m.Position.InScreen() {
			problems = append(problems, fmt.Sprintf("monster %d at %d,%d is off screen", i, m.Position.X, m.Position.Y))
		}
	}
	return problems
}

func previewCmd(args []string, stdout io.Writer) error {
	if len(args) != 1 {
		return errors.New("preview needs exactly one level file")
	}
	d, err := load(args[0])
	if err != nil {
		return err
	}
	_, err = io.WriteString(stdout, renderPreview(d))
	return err
}
