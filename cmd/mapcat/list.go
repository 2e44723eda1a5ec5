package mapcat

import (
	"regexp"
	"strings"

	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/spf13/cobra"
)

// KindDefinedBackends lists backend_* sections, as opposed to "backends"
// which lists implementations found on disk
const KindDefinedBackends = "defined-backends"

// listing is one listable source
type listing struct {
	Kind      string   `json:"kind"`
	Directory string   `json:"directory,omitempty"`
	Items     []string `json:"items"`
}

func newListCmd(opts *rootOptions) *cobra.Command {
	var (
		filter string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:               "list <kind>",
		Short:             MsgListShort,
		Long:              MsgListLong,
		Example:           MsgListExample,
		GroupID:           "core",
		Args:              cobra.ExactArgs(1),
		ValidArgsFunction: kindCompletion,
		RunE: func(cmd *cobra.Command, args []string) error {
			var re *regexp.Regexp
			if filter != "" {
				compiled, err := regexp.Compile(filter)
				if err != nil {
					return errors.Wrapf(err, errors.ErrInvalidPattern, MsgErrFilterPattern, filter).
						WithDetail("pattern", filter)
				}
				re = compiled
			}

			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			result, err := rt.list(args[0], re)
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			if len(result.Items) == 0 {
				newPrinter(cmd.ErrOrStderr()).note(rt.lang.Text("noResources", map[string]string{
					"KIND": result.Kind,
					"PATH": result.Directory,
				}))
				return nil
			}
			newPrinter(cmd.OutOrStdout()).lines(result.Items)
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", MsgFlagFilter)
	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)

	return cmd
}

// list resolves a kind name to its listing
func (rt *runtime) list(name string, filter *regexp.Regexp) (listing, error) {
	name = strings.ToLower(strings.TrimSpace(name))

	if name == KindDefinedBackends {
		return listing{Kind: name, Items: filterNames(rt.catalog.DefinedBackends(), filter)}, nil
	}

	kind, ok := types.ParseResourceKind(name)
	if !ok {
		return listing{}, unknownKindError(rt.lang, name)
	}

	result := listing{Kind: kind.String()}
	if dir, ok := rt.catalog.Directory(kind); ok {
		result.Directory = dir
	}

	if kind == types.KindMapDefinition {
		result.Items = rt.catalog.Maps(filter)
	} else {
		result.Items = filterNames(rt.catalog.List(kind), filter)
	}
	if result.Items == nil {
		result.Items = []string{}
	}
	return result, nil
}

func filterNames(names []string, filter *regexp.Regexp) []string {
	if filter == nil {
		return names
	}
	out := make([]string, 0, len(names))
	for _, name := range names {
		if filter.MatchString(name) {
			out = append(out, name)
		}
	}
	return out
}

// kindNames lists every name list accepts
func kindNames() []string {
	var names []string
	for _, kind := range types.AllResourceKinds() {
		names = append(names, kind.String())
	}
	return append(names, KindDefinedBackends)
}

func kindCompletion(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	var out []string
	for _, name := range kindNames() {
		if strings.HasPrefix(name, toComplete) {
			out = append(out, name)
		}
	}
	return out, cobra.ShellCompDirectiveNoFileComp
}
