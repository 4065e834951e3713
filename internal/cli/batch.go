package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/ytget/tubedl/internal/download"
	"github.com/ytget/tubedl/internal/model"
	"gopkg.in/yaml.v3"
)

// BatchEntry is one download listed in a batch file
type BatchEntry struct {
	URL  string `yaml:"url"`
	Kind string `yaml:"kind,omitempty"`
	Dest string `yaml:"dest,omitempty"`
}

// BatchFile is the YAML document read by the batch command
type BatchFile struct {
	Downloads []BatchEntry `yaml:"downloads"`
}

// batchJob is a validated batch entry
type batchJob struct {
	URL  string
	Kind model.Kind
	Dest string
}

func newBatchCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "batch [YAML_FILE]",
		Short: "Download every entry of a YAML file, one after another",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("error reading batch file: %w", err)
			}
			jobs, err := parseBatch(data)
			if err != nil {
				return err
			}

			run, closeFn := a.runner()
			defer closeFn()

			prefs := a.env.Prefs.Load()
			failed := 0
			for i, job := range jobs {
				PrintHeader(a.out, fmt.Sprintf("[%d/%d] %s", i+1, len(jobs), job.URL))
				req := download.NewRequest(job.URL, job.Kind, prefs)
				req.Destination = resolveDestination(job.Dest, prefs)
				if err := run(cmd.Context(), req); err != nil {
					log.Debug().Str("op", "cli/batch").Str("url", job.URL).Err(err).Msg("Batch entry failed")
					failed++
				}
			}

			if failed > 0 {
				err := fmt.Errorf("%d of %d downloads failed", failed, len(jobs))
				PrintError(a.out, err.Error())
				return reported(err)
			}
			PrintSuccess(a.out, fmt.Sprintf("All %d downloads completed", len(jobs)))
			return nil
		},
	}
}

// parseBatch decodes and validates a batch file
func parseBatch(data []byte) ([]batchJob, error) {
	var file BatchFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("error parsing batch file: %w", err)
	}
	if len(file.Downloads) == 0 {
		return nil, fmt.Errorf("no downloads found in the batch file")
	}

	jobs := make([]batchJob, 0, len(file.Downloads))
	for i, entry := range file.Downloads {
		if entry.URL == "" {
			return nil, fmt.Errorf("entry %d: url is required", i+1)
		}
		kind, err := model.ParseKind(entry.Kind)
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i+1, err)
		}
		jobs = append(jobs, batchJob{URL: entry.URL, Kind: kind, Dest: entry.Dest})
	}
	return jobs, nil
}
