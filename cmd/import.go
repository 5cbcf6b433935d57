package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/bravoman80000/Country-Sim-Bot/internal/data"
	"github.com/bravoman80000/Country-Sim-Bot/internal/persistence"
	"github.com/bravoman80000/Country-Sim-Bot/internal/registry"
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Import legacy countries, war log and turn tracker files",
	Long: `Reads countries.json, warlog.json and turn_tracker.json files written by the
earlier Python bot and merges them into the configured store. Records whose name is
already stored are skipped unless --overwrite is given.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		countries, _ := cmd.Flags().GetString("countries")
		wars, _ := cmd.Flags().GetString("wars")
		tracker, _ := cmd.Flags().GetString("tracker")
		overwrite, _ := cmd.Flags().GetBool("overwrite")
		if countries == "" && wars == "" && tracker == "" {
			return errors.New("nothing to import: pass --countries, --wars or --tracker")
		}

		cfg, err := loadConfig(os.Stderr)
		if err != nil {
			return err
		}
		dst, err := persistence.Open(cfg.StoreOptions())
		if err != nil {
			return err
		}
		defer dst.Close()

		src := persistence.OpenFiles(map[string]string{
			persistence.CountriesDoc: countries,
			persistence.WarsDoc:      wars,
			persistence.CalendarDoc:  tracker,
		})
		rep, err := importLegacy(src, dst, importOptions{
			Overwrite: overwrite,
			Calendar:  tracker != "",
			Progress:  cmd.ErrOrStderr(),
		})
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "\nImported %d countries and %d wars (%d skipped).\n", rep.Countries, rep.Wars, rep.Skipped)
		if rep.Calendar != nil {
			fmt.Fprintf(cmd.OutOrStdout(), "Calendar set to Turn %d of %d.\n", rep.Calendar.Turn, rep.Calendar.Year)
		}
		return nil
	},
}

type importOptions struct {
	Overwrite bool
	Calendar  bool
	Progress  io.Writer
}

type importReport struct {
	Countries int
	Wars      int
	Skipped   int
	Calendar  *data.Calendar
}

// importLegacy merges every record of src into dst, one progress step per record.
func importLegacy(src, dst persistence.Store, opts importOptions) (importReport, error) {
	var rep importReport

	inCountries, err := src.LoadCountries()
	if err != nil {
		return rep, err
	}
	inWars, err := src.LoadWars()
	if err != nil {
		return rep, err
	}
	countries, err := dst.LoadCountries()
	if err != nil {
		return rep, err
	}
	wars, err := dst.LoadWars()
	if err != nil {
		return rep, err
	}

	total := len(inCountries) + len(inWars.Wars)
	if opts.Calendar {
		total++
	}
	progress := opts.Progress
	if progress == nil {
		progress = io.Discard
	}
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(progress),
		progressbar.OptionSetDescription("Importing records"),
		progressbar.OptionShowCount(),
	)

	names := make([]string, 0, len(inCountries))
	for name := range inCountries {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if _, exists := countries[name]; exists && !opts.Overwrite {
			rep.Skipped++
		} else {
			countries[name] = inCountries[name]
			rep.Countries++
		}
		_ = bar.Add(1)
	}

	existing := registry.NewWars(wars)
	for _, w := range inWars.Wars {
		w.Intensity = registry.BarIntensity(w)
		if existing.Restore(w, opts.Overwrite) {
			rep.Wars++
		} else {
			rep.Skipped++
		}
		_ = bar.Add(1)
	}

	if err := dst.SaveCountries(countries); err != nil {
		return rep, err
	}
	if err := dst.SaveWars(existing.Log()); err != nil {
		return rep, err
	}
	if opts.Calendar {
		cal, err := src.LoadCalendar(data.Calendar{})
		if err != nil {
			return rep, err
		}
		if cal != (data.Calendar{}) {
			if err := dst.SaveCalendar(cal); err != nil {
				return rep, err
			}
			rep.Calendar = &cal
		}
		_ = bar.Add(1)
	}
	_ = bar.Finish()
	return rep, nil
}

func init() {
	rootCmd.AddCommand(importCmd)
	importCmd.Flags().String("countries", "", "legacy countries.json")
	importCmd.Flags().String("wars", "", "legacy warlog.json")
	importCmd.Flags().String("tracker", "", "legacy turn_tracker.json")
	importCmd.Flags().Bool("overwrite", false, "replace records that are already stored")
}
