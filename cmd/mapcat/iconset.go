package mapcat

import (
	"fmt"

	"github.com/arthur-debert/mapcat/pkg/messages"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/spf13/cobra"
)

type iconsetType struct {
	Iconset  string `json:"iconset"`
	Filetype string `json:"filetype"`
}

func newIconsetTypeCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "iconset-type <iconset>...",
		Short:   MsgIconsetTypeShort,
		GroupID: "core",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			warnings := messages.NewConsoleSink(cmd.ErrOrStderr(), colorFor(cmd.ErrOrStderr()))
			dir := rt.cfg.Path(types.PathIcon)

			results := make([]iconsetType, 0, len(args))
			for _, name := range args {
				filetype := rt.catalog.IconsetFiletype(name)
				if filetype == "" {
					warnings.Emit(types.Message{
						Severity: types.SeverityWarning,
						Text:     rt.lang.Text("noIconset", map[string]string{"ICONSET": name, "PATH": dir}),
						Path:     dir,
					})
				}
				results = append(results, iconsetType{Iconset: name, Filetype: filetype})
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), results)
			}
			for _, r := range results {
				if r.Filetype != "" {
					fmt.Fprintf(cmd.OutOrStdout(), MsgIconsetType, r.Iconset, r.Filetype)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	return cmd
}
