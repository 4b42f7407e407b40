package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/rshade/poolheat/internal/config"
	"github.com/rshade/poolheat/internal/engine"
)

// Input flag names shared by estimate and report.
const (
	flagPoolArea            = "pool-area"
	flagDesiredTemp         = "desired-temp"
	flagSeason              = "season"
	flagGasCost             = "gas-cost"
	flagLocalIncentive      = "local-incentive"
	flagLocalIncentiveKind  = "local-incentive-kind"
	flagLocalIncentiveValue = "local-incentive-value"
)

// inputFlagNames lists every flag that describes a single site.
var inputFlagNames = []string{ //nolint:gochecknoglobals // Read-only flag table.
	flagPoolArea, flagDesiredTemp, flagSeason, flagGasCost,
	flagLocalIncentive, flagLocalIncentiveKind, flagLocalIncentiveValue,
}

// InputFlags holds the raw estimate inputs collected from flags.
// Exported for testing.
type InputFlags struct {
	PoolArea            float64
	DesiredTemp         float64
	Season              string
	GasCost             float64
	LocalIncentive      bool
	LocalIncentiveKind  string
	LocalIncentiveValue float64
}

// addInputFlags registers the single-site input flags on cmd.
func addInputFlags(cmd *cobra.Command, f *InputFlags) {
	cmd.Flags().Float64Var(&f.PoolArea, flagPoolArea, 0, "Pool surface area in square feet")
	cmd.Flags().Float64Var(&f.DesiredTemp, flagDesiredTemp, 0,
		"Desired water temperature in °F (default from config)")
	cmd.Flags().StringVar(&f.Season, flagSeason, "",
		"Heating season: full-year or march-to-thanksgiving (default from config)")
	cmd.Flags().Float64Var(&f.GasCost, flagGasCost, 0, "Natural gas cost in USD per therm (default from config)")
	cmd.Flags().BoolVar(&f.LocalIncentive, flagLocalIncentive, false, "Apply a local incentive")
	cmd.Flags().StringVar(&f.LocalIncentiveKind, flagLocalIncentiveKind, "",
		"Local incentive kind: percent or fixed (default from config)")
	cmd.Flags().Float64Var(&f.LocalIncentiveValue, flagLocalIncentiveValue, 0,
		"Local incentive value: percent of system cost, or USD when fixed")
}

// applyInputDefaults fills flags the user did not set from the config defaults.
func applyInputDefaults(changed func(string) bool, f *InputFlags, d config.DefaultsConfig) {
	if !changed(flagDesiredTemp) {
		f.DesiredTemp = d.DesiredTempF
	}
	if !changed(flagSeason) {
		f.Season = d.Season.String()
	}
	if !changed(flagGasCost) {
		f.GasCost = d.GasCostPerTherm
	}
	if !changed(flagLocalIncentiveKind) {
		f.LocalIncentiveKind = d.LocalIncentiveKind.String()
	}
}

// BuildInputs converts parsed flags into engine inputs and checks them.
// Exported for testing.
func BuildInputs(f InputFlags) (engine.Inputs, error) {
	season, err := engine.ParseSeason(f.Season)
	if err != nil {
		return engine.Inputs{}, fmt.Errorf("--%s: %w", flagSeason, err)
	}
	kind, err := engine.ParseIncentiveKind(f.LocalIncentiveKind)
	if err != nil {
		return engine.Inputs{}, fmt.Errorf("--%s: %w", flagLocalIncentiveKind, err)
	}

	in := engine.Inputs{
		PoolAreaSqft:          f.PoolArea,
		DesiredTempF:          f.DesiredTemp,
		Season:                season,
		GasCostPerTherm:       f.GasCost,
		LocalIncentiveEnabled: f.LocalIncentive,
		LocalIncentiveKind:    kind,
		LocalIncentiveValue:   f.LocalIncentiveValue,
	}
	if err = in.Validate(); err != nil {
		return engine.Inputs{}, err
	}
	return in, nil
}

// defaultInputs returns the site inputs implied by the config defaults alone.
func defaultInputs(d config.DefaultsConfig) engine.Inputs {
	return engine.Inputs{
		DesiredTempF:       d.DesiredTempF,
		Season:             d.Season,
		GasCostPerTherm:    d.GasCostPerTherm,
		LocalIncentiveKind: d.LocalIncentiveKind,
	}
}

// DoS protection limits for sites files.
const (
	maxSites         = 1000
	maxSitesFileSize = 1 << 20
	maxSiteNameLen   = 128
)

// sitesFile is the on-disk layout of a --sites file.
type sitesFile struct {
	Sites []struct {
		Name   string    `yaml:"name"`
		Inputs yaml.Node `yaml:"inputs"`
	} `yaml:"sites"`
}

// ErrInvalidSitesFile is returned when a sites file cannot be used.
var ErrInvalidSitesFile = errors.New("invalid sites file")

// LoadSites reads a YAML sites file. Fields a site omits take their value
// from base, so a file only needs to list what differs per pool.
// Exported for testing.
//
// Example:
//
//	sites:
//	  - name: Community center
//	    inputs:
//	      pool_area_sqft: 2000
//	      season: march-to-thanksgiving
//	  - name: Hotel
//	    inputs:
//	      pool_area_sqft: 3500
//	      gas_cost_per_therm: 1.85
func LoadSites(path string, base engine.Inputs) ([]engine.Site, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("reading sites file: %w", err)
	}
	if info.Size() > maxSitesFileSize {
		return nil, fmt.Errorf("%w: %s is %d bytes (max %d)", ErrInvalidSitesFile, path, info.Size(), maxSitesFileSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sites file: %w", err)
	}

	var file sitesFile
	if err = yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSitesFile, err)
	}
	if len(file.Sites) == 0 {
		return nil, fmt.Errorf("%w: no sites listed in %s", ErrInvalidSitesFile, path)
	}
	if len(file.Sites) > maxSites {
		return nil, fmt.Errorf("%w: too many sites: %d (max %d)", ErrInvalidSitesFile, len(file.Sites), maxSites)
	}

	sites := make([]engine.Site, 0, len(file.Sites))
	seen := make(map[string]bool, len(file.Sites))
	for i, s := range file.Sites {
		name := strings.TrimSpace(s.Name)
		if name == "" {
			name = fmt.Sprintf("site-%d", i+1)
		}
		if len(name) > maxSiteNameLen {
			return nil, fmt.Errorf("%w: site %d name too long: %d bytes (max %d)",
				ErrInvalidSitesFile, i+1, len(name), maxSiteNameLen)
		}
		if seen[name] {
			return nil, fmt.Errorf("%w: duplicate site name %q", ErrInvalidSitesFile, name)
		}
		seen[name] = true

		in := base
		if !s.Inputs.IsZero() {
			if err = s.Inputs.Decode(&in); err != nil {
				return nil, fmt.Errorf("%w: site %q: %w", ErrInvalidSitesFile, name, err)
			}
		}
		if err = in.Validate(); err != nil {
			return nil, fmt.Errorf("%w: site %q: %w", ErrInvalidSitesFile, name, err)
		}
		sites = append(sites, engine.Site{Name: name, Inputs: in})
	}
	return sites, nil
}
