package mapcat

import (
	"io"
	"io/fs"
	"os"

	"github.com/arthur-debert/mapcat/pkg/catalog"
	"github.com/arthur-debert/mapcat/pkg/config"
	"github.com/arthur-debert/mapcat/pkg/errors"
	"github.com/arthur-debert/mapcat/pkg/filesystem"
	"github.com/arthur-debert/mapcat/pkg/lang"
	"github.com/arthur-debert/mapcat/pkg/logging"
	"github.com/arthur-debert/mapcat/pkg/types"
	"github.com/mattn/go-isatty"
)

// runtime bundles what a command needs once configuration is loaded
type runtime struct {
	cfg     *config.Config
	fs      types.FS
	catalog *catalog.Catalog
	lang    *lang.Language
}

func newRuntime(opts *rootOptions) (*runtime, error) {
	logger := logging.GetLogger("cmd")

	cfg, err := config.Load(opts.configFile)
	if err != nil {
		return nil, errors.Wrap(err, errors.GetErrorCode(err), MsgErrLoadConfig)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	name := opts.language
	if name == "" {
		name = cfg.Global.Language
	}

	// an installation's language directory may add or override tables
	var langFS fs.FS
	if dir := cfg.Path(types.PathLanguage); dir != "" {
		langFS = os.DirFS(dir)
	}
	language, err := lang.LoadFS(langFS, name)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), MsgErrLoadLanguage, name)
	}

	fsys := filesystem.NewOS()
	logger.Debug().
		Str("config", cfg.Source()).
		Str("language", language.Name()).
		Msg("Runtime ready")

	return &runtime{
		cfg:     cfg,
		fs:      fsys,
		catalog: catalog.New(cfg, cfg, fsys),
		lang:    language,
	}, nil
}

// colorFor reports whether output to w should be styled
func colorFor(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && IsTerminal(f)
}

// IsTerminal reports whether f is a terminal and NO_COLOR is unset
func IsTerminal(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
