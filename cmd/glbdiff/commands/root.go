package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vfig/glbdiff/internal/output"
)

// Execute runs the root command against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the glbdiff command. One binary serves three
// modes: direct two-file comparison, single-file textconv dump, and the
// seven-argument form git passes to an external diff command.
func NewRootCommand() *cobra.Command {
	var (
		textconv bool
		gitMode  bool
	)

	cmd := &cobra.Command{
		Use:   "glbdiff [flags] old_file new_file",
		Short: "Diff the JSON content of GLB files",
		Long: `Compare the JSON content of GLB (binary glTF) files, treating binary
chunks as opaque blobs that are either identical or reported as differing.

Integrating with git:

  1. Add the following line to your .gitattributes:

      *.glb diff=glbdiff

  2. Add either of the following options to your git config:

      [diff "glbdiff"]
          textconv = glbdiff --textconv

      [diff "glbdiff"]
          command = glbdiff --git

Using the textconv option is recommended; it lets git's own diff
algorithms, colouring etc. operate as usual. With the command option git
displays the glbdiff output verbatim.`,

		Example: `  # Compare two files directly
  glbdiff old.glb new.glb

  # Convert a single file to text (for git-diff textconv)
  glbdiff --textconv model.glb`,

		Args: cobra.ArbitraryArgs,

		SilenceUsage:  true,
		SilenceErrors: true,

		RunE: func(cmd *cobra.Command, args []string) error {
			out := output.Stdout()
			defer out.Flush()

			switch {
			case textconv:
				if len(args) != 1 {
					return usageError(args)
				}
				return RunTextconv(out, args[0])

			case gitMode:
				// git invokes a diff command with seven positional
				// arguments: path old-file old-hex old-mode new-file
				// new-hex new-mode. Only the two file paths matter here.
				if len(args) != 7 {
					return usageError(args)
				}
				return RunDiff(out, args[1], args[4])

			default:
				if len(args) != 2 {
					return usageError(args)
				}
				return RunDiff(out, args[0], args[1])
			}
		},
	}

	cmd.Flags().BoolVar(&textconv, "textconv", false, "convert a single file to text (for git-diff textconv)")
	cmd.Flags().BoolVar(&gitMode, "git", false, "git mode (for use as a git-diff command)")

	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// usageError reports a wrong argument count or shape; it is raised before
// any file is read or parsed.
func usageError(args []string) error {
	return fmt.Errorf("incorrect arguments: '%s'. Try --help", strings.Join(args, " "))
}
