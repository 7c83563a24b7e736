package main

import (
	"fmt"
	"runtime"
	"strings"

	cli "github.com/urfave/cli/v3"

	"folio/common"
	"folio/misc"
	"folio/paginate"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:            misc.GetAppName(),
		Usage:           "automatic pagination of text, markdown and pdf documents",
		Version:         misc.GetVersion() + " (" + runtime.Version() + ") : " + misc.GetGitHash(),
		HideHelpCommand: true,
		Before:          initializeAppContext,
		After:           destroyAppContext,
		OnUsageError:    usageErrorHandler,
		ExitErrHandler:  exitErrHandler,
		CommandNotFound: subcommandNotFoundHandler,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, DefaultText: "", Usage: "load configuration from `FILE` (YAML)"},
			&cli.BoolFlag{Name: "debug", Aliases: []string{"d"}, Usage: "changes program behavior to help troubleshooting, produces report archive"},
		},
		Commands: []*cli.Command{
			paginateCommand(),
			relayoutCommand(),
			dumpConfigCommand(),
		},
	}
}

func formatFlag(fallback string) cli.Flag {
	return &cli.StringFlag{
		Name:  "to",
		Usage: "output `TYPE` (supported types: " + strings.Join(common.OutputFmtNames(), ", ") + "), " + fallback + " when absent",
	}
}

func overwriteFlag() cli.Flag {
	return &cli.BoolFlag{Name: "overwrite", Aliases: []string{"ow"}, Usage: "continue even if destination exits, overwrite files"}
}

func paginateCommand() *cli.Command {
	return &cli.Command{
		Name:         "paginate",
		Usage:        "Lays document(s) out into pages and saves resulting project(s)",
		OnUsageError: usageErrorHandler,
		Action:       paginate.Run,
		Flags: []cli.Flag{
			formatFlag("configured format"),
			&cli.StringFlag{Name: "images", Usage: "add all images found under `DIR` (recursively, natural order) to every document"},
			&cli.BoolFlag{Name: "nodirs", Aliases: []string{"nd"}, Usage: "when producing output do not keep input directory structure"},
			overwriteFlag(),
			&cli.StringFlag{Name: "codepage", Aliases: []string{"cp"},
				Usage: "`ENCODING` for text without BOM and for ALL non UTF-8 file names in processed archives (see IANA.org for character set names)"},
		},
		ArgsUsage: "SOURCE [DESTINATION]",
		CustomHelpTemplate: fmt.Sprintf(`%s
SOURCE:
    path to document(s) to process (.txt, .text, .md, .markdown or pdf), following formats are supported:
        path to a file: "[path_to_file]file.txt"
        path to a directory: "[path_to_directory]directory" - recursively process all documents under directory (symbolic links are not followed)
        path to archive with path inside archive to a particular document: "[path_to_archive]archive.zip[path_in_archive]/file.md"
        path to archive with path inside archive: "[path_to_archive]archive.zip[path_in_archive]" - recursively process all documents under archive path

	Images under archive path are added to every document from the archive as
	"archive.zip/path" references. Archives inside archives are not processed.

DESTINATION:
    always a path, output file name(s) and extension will be derived from other parameters
    if absent - current working directory
`, cli.CommandHelpTemplate),
	}
}

func relayoutCommand() *cli.Command {
	return &cli.Command{
		Name:         "relayout",
		Usage:        "Re-paginates existing project with active configuration",
		OnUsageError: usageErrorHandler,
		Action:       paginate.RunRelayout,
		Flags: []cli.Flag{
			formatFlag("input format"),
			overwriteFlag(),
		},
		ArgsUsage: "PROJECT [DESTINATION]",
		CustomHelpTemplate: fmt.Sprintf(`%s
PROJECT:
    project file (json or yaml) produced by paginate command

	Elements of every page are taken in reading order, markup is stripped to
	text, continued paragraphs are joined and content is laid out again.
	Leading locked (cover) pages are kept intact.

DESTINATION:
    always a path, output file name will be derived from project file name
    if absent - current working directory
`, cli.CommandHelpTemplate),
	}
}

func dumpConfigCommand() *cli.Command {
	return &cli.Command{
		Name:  "dumpconfig",
		Usage: "Dumps either default or actual configuration (YAML)",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "default", Usage: "output default embedded configuration"},
		},
		OnUsageError: usageErrorHandler,
		Action:       outputConfiguration,
		ArgsUsage:    "DESTINATION",
		CustomHelpTemplate: fmt.Sprintf(`%s

DESTINATION:
    file name to write configuration to, if absent - STDOUT

Produces file with actual "active" configuration values which is composition
of default values and values specified in configuration file. To see default
configuration embedded into the program use --default flag.
`, cli.CommandHelpTemplate),
	}
}
