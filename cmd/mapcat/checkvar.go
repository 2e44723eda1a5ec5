package mapcat

import (
	stderrors "errors"
	"io"

	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/arthur-debert/mapcat/pkg/logging"
	"github.com/arthur-debert/mapcat/pkg/messages"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/arthur-debert/mapcat/pkg/varstore"
	"github.com/spf13/cobra"
)

type checkResult struct {
	Path     string          `json:"path"`
	OK       bool            `json:"ok"`
	Writable bool            `json:"checkedWritable"`
	Messages []types.Message `json:"messages"`
}

func newCheckVarCmd(opts *rootOptions) *cobra.Command {
	var (
		writable bool
		quiet    bool
		asJSON   bool
	)

	cmd := &cobra.Command{
		Use:     "check-var",
		Short:   MsgCheckVarShort,
		Long:    MsgCheckVarLong,
		Example: MsgCheckVarExample,
		GroupID: "core",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := newRuntime(opts)
			if err != nil {
				return err
			}

			collector := messages.NewCollector()
			var console io.Writer
			if !asJSON && !quiet {
				console = cmd.ErrOrStderr()
			}
			sinks := checkSinks(collector, console, opts.verbosity)

			v := varstore.New(rt.cfg, rt.fs, rt.lang, messages.Multi(sinks...))
			report := !quiet || asJSON

			var ok bool
			if writable {
				ok = v.CheckWritable(report)
			} else {
				ok = v.CheckExists(report)
			}

			if asJSON {
				msgs := collector.Messages()
				if msgs == nil {
					msgs = []types.Message{}
				}
				if err := writeJSON(cmd.OutOrStdout(), checkResult{
					Path:     v.Path(),
					OK:       ok,
					Writable: writable,
					Messages: msgs,
				}); err != nil {
					return err
				}
			} else if ok && !quiet {
				key := "varFolderExists"
				if writable {
					key = "varFolderOk"
				}
				newPrinter(cmd.OutOrStdout()).note(rt.lang.Text(key, map[string]string{"PATH": v.Path()}))
			}

			if !ok {
				return ErrCheckFailed
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&writable, "writable", false, MsgFlagWritable)
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, MsgFlagQuiet)
	cmd.Flags().BoolVar(&asJSON, "json", false, MsgFlagJSON)
	return cmd
}

// checkSinks builds the message sinks for check-var. A nil console means
// messages go to the collector and the log only. The log sink is left out
// when the console prints at default verbosity, since both would show the
// same errors on stderr.
func checkSinks(collector *messages.Collector, console io.Writer, verbosity int) []types.MessageSink {
	sinks := []types.MessageSink{collector}
	if console == nil || verbosity > 0 {
		sinks = append(sinks, messages.NewLogSink(logging.GetLogger("varstore")))
	}
	if console != nil {
		sinks = append(sinks, messages.NewConsoleSink(console, colorFor(console)))
	}
	return sinks
}

// ErrCheckFailed is returned when check-var fails. The failure has already
// been reported, so callers only set the exit status.
var ErrCheckFailed = errors.New(errors.ErrVarCheck, MsgErrCheckFailed)

// IsCheckFailure reports whether err is, or wraps, ErrCheckFailed.
func IsCheckFailure(err error) bool {
	return stderrors.Is(err, ErrCheckFailed)
}
