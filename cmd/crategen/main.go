package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/gookit/color"

	"github.com/ctennis/rusoto/internal/botocore"
	"github.com/ctennis/rusoto/internal/crategen"
	"github.com/ctennis/rusoto/internal/generator"
)

const version = "v0.1.0"

var (
	colorSuccess = color.Green.Render
	colorFail    = color.Red.Render
)

func main() {
	subcommands.Register(subcommands.CommandsCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(&versionCmd{}, "")
	subcommands.Register(&genCmd{}, "")

	flag.Parse()

	log.SetFlags(0)
	log.SetPrefix("crategen: ")
	log.SetOutput(os.Stderr)

	allCmds := map[string]bool{
		"commands": true,
		"version":  true,
		"help":     true,
		"flags":    true,
		"gen":      true,
	}
	if args := flag.Args(); len(args) == 0 || !allCmds[args[0]] {
		genCmd := &genCmd{}
		os.Exit(int(genCmd.Execute(context.Background(), flag.CommandLine)))
	}
	os.Exit(int(subcommands.Execute(context.Background())))
}

type versionCmd struct {
}

func (c *versionCmd) Name() string     { return "version" }
func (c *versionCmd) Synopsis() string { return "version" }
func (c *versionCmd) Usage() string    { return "version" }

func (c *versionCmd) SetFlags(_ *flag.FlagSet) {
}

func (c *versionCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	log.Println(version)
	return subcommands.ExitSuccess
}

type genCmd struct {
	manifest   string
	definition string
	output     string
}

func (*genCmd) Name() string { return "gen" }
func (*genCmd) Synopsis() string {
	return "generate Rust client source from botocore service definitions"
}
func (*genCmd) Usage() string {
	return `crategen gen -m manifest.yml
  Generates one client source file per service listed in the manifest.

crategen gen -d definition.json -o output.rs
  Generates a single service without a manifest.
`
}

func (cmd *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.manifest, "m", "", "path to the generation manifest")
	f.StringVar(&cmd.definition, "d", "", "path to a single service definition")
	f.StringVar(&cmd.output, "o", "", "output path for a single service")
}

func (cmd *genCmd) Execute(ctx context.Context, f *flag.FlagSet, args ...interface{}) subcommands.ExitStatus {
	if cmd.manifest == "" && cmd.definition == "" {
		log.Println("either -m or -d is required")
		return subcommands.ExitUsageError
	}

	if cmd.definition != "" {
		if cmd.output == "" {
			log.Println("-d requires -o")
			return subcommands.ExitUsageError
		}
		service, err := botocore.LoadFile(cmd.definition)
		if err != nil {
			log.Println(colorFail(err.Error()))
			return subcommands.ExitFailure
		}
		if err := generator.Generate(service, cmd.output); err != nil {
			log.Println(colorFail(err.Error()))
			return subcommands.ExitFailure
		}
		log.Printf("%s: wrote %s\n", service.ServiceName(), colorSuccess(cmd.output))
		return subcommands.ExitSuccess
	}

	manifest, err := crategen.LoadManifest(cmd.manifest)
	if err != nil {
		log.Println(colorFail(err.Error()))
		return subcommands.ExitFailure
	}

	success := true
	for _, result := range crategen.New(manifest).Generate() {
		if result.Err != nil {
			log.Printf("%s: %s\n", result.Name, colorFail(result.Err.Error()))
			success = false
			continue
		}
		log.Printf("%s: wrote %s\n", result.Name, colorSuccess(result.OutputPath))
	}
	if !success {
		log.Println("at least one generate failure")
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
