package mapcat

import (
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/spf13/cobra"
)

type kindInfo struct {
	Kind      string `json:"kind"`
	Source    string `json:"source"`
	Directory string `json:"directory,omitempty"`
}

func newKindsCmd(opts *rootOptions) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "kinds",
		Short:   MsgKindsShort,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			infos := rt.kinds()
			if asJSON {
				return writeJSON(cmd.OutOrStdout(), infos)
			}

			rows := make([][2]string, 0, len(infos))
			for _, info := range infos {
				dir := info.Directory
				switch {
				case info.Source == "config":
					dir = MsgFromConfig
				case dir == "":
					dir = MsgNoDirectory
				}
				rows = append(rows, [2]string{info.Kind, dir})
			}
			newPrinter(cmd.OutOrStdout()).table([2]string{MsgKindsHeader, MsgDirHeader}, rows)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	return cmd
}

func (rt *runtime) kinds() []kindInfo {
	var infos []kindInfo
	for _, kind := range types.AllResourceKinds() {
		info := kindInfo{Kind: kind.String(), Source: "directory"}
		if kind == types.KindRotationPool {
			info.Source = "config"
		} else if dir, ok := rt.catalog.Directory(kind); ok {
			info.Directory = dir
		}
		infos = append(infos, info)
	}
	return append(infos, kindInfo{Kind: KindDefinedBackends, Source: "config"})
}
