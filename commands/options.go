package commands

import (
	"io"
	"os"

	"code.cloudfoundry.org/lager"
	"github.com/hashicorp/go-multierror"
	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"

	"github.com/pivotal-cf/pwcheck/config"
	pwlog "github.com/pivotal-cf/pwcheck/log"
	"github.com/pivotal-cf/pwcheck/scoring"
	"github.com/pivotal-cf/pwcheck/sniff"
)

// CommonOptions are shared by the check and batch commands.
type CommonOptions struct {
	ConfigFile string `long:"config" description:"YAML file overriding the built-in word lists" value-name:"PATH"`
	NoColor    bool   `long:"no-color" description:"disables colored output"`
	Debug      bool   `long:"debug" description:"enables debug logging"`
}

func (o *CommonOptions) setup(component string, logOut io.Writer) lager.Logger {
	ansi.DisableColors(o.NoColor || !colorTerminal(os.Stdout))
	return pwlog.NewLogger(component, logOut, o.Debug)
}

func (o *CommonOptions) buildScorer(logger lager.Logger) (*scoring.Scorer, error) {
	if o.ConfigFile == "" {
		return scoring.NewScorer(sniff.NewDefaultSniffer()), nil
	}

	logger = logger.Session("load-config", lager.Data{"path": o.ConfigFile})

	cfg, err := config.LoadFile(o.ConfigFile)
	if err != nil {
		logger.Error("failed", err)
		return nil, err
	}

	var result error
	for _, e := range cfg.Validate() {
		result = multierror.Append(result, e)
	}
	if result != nil {
		logger.Error("invalid", result)
		return nil, result
	}

	common, dictionary := cfg.Lists()
	logger.Debug("loaded", lager.Data{
		"common-passwords": common.Len(),
		"dictionary-words": dictionary.Len(),
	})

	return scoring.NewScorer(sniff.NewSniffer(common, dictionary)), nil
}

func colorTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
