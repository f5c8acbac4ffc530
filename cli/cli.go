package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"stationpedia/ds"
	"stationpedia/pedia"
	"stationpedia/pedia/phash"
	"stationpedia/ui"
)

type (
	Args struct {
		Interactive *InteractiveCmd `arg:"subcommand:interactive"`
		Generate    *GenerateCmd    `arg:"subcommand:generate"`
	}
	InteractiveCmd struct{}
	GenerateCmd    struct {
		Source  string `help:"path to the game's language export" placeholder:"english.xml"`
		Text    string `help:"path of the hash reference sheet" placeholder:"stationpedia.txt"`
		Code    string `help:"path of the generated Go source" placeholder:"devicehashes.go"`
		Package string `help:"package name of the generated Go source" placeholder:"devicehashes"`
		Config  string `help:"path to a YAML config" placeholder:"stationpedia.yaml"`
		JSON    bool   `arg:"--json" help:"print the run summary as JSON"`
	}
)

func (Args) Description() string {
	des := strings.Join(
		[]string{
			"Stationpedia, but for machines.\n",
			"A CLI utility to turn Stationeers' english.xml into a hash reference sheet",
			"and a compiled Go lookup source for ic10 tooling.",
		},
		"\n",
	)
	des += "\n"
	return des
}

func CheckExistence(path string) bool {
	_, err := os.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		return false
	}
	return err == nil
}

// ToConfig layers the command's flags over the YAML config, which in
// turn sits over the defaults.
func (r GenerateCmd) ToConfig() (*pedia.Config, error) {
	config, err := pedia.LoadConfig(r.Config)
	if err != nil {
		err := errors.Wrap(err, "cli.ToConfig error")
		return nil, err
	}
	if r.Source != "" {
		config.SourcePath = r.Source
	}
	if r.Text != "" {
		config.TextPath = r.Text
	}
	if r.Code != "" {
		config.CodePath = r.Code
	}
	if r.Package != "" {
		config.CodePackage = r.Package
	}
	return config, nil
}

func StartGenerating(generateArgs *GenerateCmd) error {
	config, err := generateArgs.ToConfig()
	if err != nil {
		return err
	}
	if !CheckExistence(config.SourcePath) {
		println("No language export at: " + config.SourcePath)
		println("A default Steam install keeps it at: " + pedia.SteamSourcePath)
	}

	summary, err := pedia.Generate(*config)
	if err != nil {
		err := errors.Wrap(err, "cli.StartGenerating error")
		return err
	}

	if generateArgs.JSON {
		fmt.Println(ds.DumpJSON(summary))
		return nil
	}
	PrintSummary(summary)
	return nil
}

func PrintSummary(summary *pedia.Summary) {
	fmt.Printf(
		"Processed %d identifiers into %d unique hashes\n",
		summary.Identifiers, summary.UniqueHashes,
	)
	if len(summary.Collisions) > 0 {
		fmt.Printf("WARNING: %d hash collision(s)\n", len(summary.Collisions))
		for _, collision := range summary.Collisions {
			fmt.Printf(
				"  %d (%s): %s; kept %s\n",
				int32(collision.HashUnsigned),
				phash.HexString(collision.HashUnsigned),
				strings.Join(collision.Identifiers, ", "),
				collision.Kept,
			)
		}
	}
	fmt.Println("Wrote " + summary.TextPath)
	fmt.Println("Wrote " + summary.CodePath)
}

func StartInteractive() {
	sourcePath, ok, err := ui.Start()
	if err != nil {
		println("Interactive selection failed: " + err.Error())
		os.Exit(1)
	}
	if !ok {
		println("Nothing selected. Bye!")
		return
	}

	config := pedia.DefaultConfig()
	config.SourcePath = sourcePath
	summary, err := pedia.Generate(config)
	if err != nil {
		println("Generating failed: " + err.Error())
		os.Exit(1)
	}
	PrintSummary(summary)
}

func Start() {
	args := Args{}
	arg.MustParse(&args)

	if (args.Interactive == nil && args.Generate == nil) ||
		args.Interactive != nil {
		StartInteractive()
		return
	}
	err := StartGenerating(args.Generate)
	if err != nil {
		println("Generating failed: " + err.Error())
		os.Exit(1)
	}
}
