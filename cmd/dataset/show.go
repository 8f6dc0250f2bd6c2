package dataset

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc"
	"github.com/odpf/salt/log"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

const (
	defaultHost = "http://localhost:5000"
	showTimeout = time.Second * 10
)

var summaryFields = []string{"id", "name", "directory", "status"}

type showCommand struct {
	logger log.Logger
	client *http.Client

	host string
}

// NewShowCommand initializes command to show a dataset job summary
func NewShowCommand(l log.Logger) *cobra.Command {
	show := &showCommand{
		logger: l,
		client: &http.Client{Timeout: showTimeout},
	}

	cmd := &cobra.Command{
		Use:   "show <job_id>",
		Short: "Show the summary of a dataset job",
		Long: heredoc.Doc(`Fetches the JSON summary of a dataset job from the server
			and prints its id, name, directory and status.`),
		Example: heredoc.Doc(`
			$ digits dataset show 20230101-101010-4f2a
			$ digits dataset show 20230101-101010-4f2a --host http://digits.local:5000`),
		Args: cobra.ExactArgs(1),
		RunE: show.RunE,
	}
	cmd.Flags().StringVar(&show.host, "host", defaultHost, "Targeted digits server")
	return cmd
}

func (s *showCommand) RunE(cmd *cobra.Command, args []string) error {
	ctx, cancel := context.WithTimeout(cmd.Context(), showTimeout)
	defer cancel()

	summary, err := s.fetchSummary(ctx, args[0])
	if err != nil {
		return err
	}
	s.logger.Info(stringifySummary(summary))
	return nil
}

func (s *showCommand) fetchSummary(ctx context.Context, jobID string) (map[string]string, error) {
	endpoint := strings.TrimSuffix(s.host, "/") + "/datasets/" + url.PathEscape(jobID) + ".json"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("invalid host [%s]: %w", s.host, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			s.logger.Error("Fetching dataset job took too long, timing out")
		}
		return nil, fmt.Errorf("request failed for dataset job [%s]: %w", jobID, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("unable to read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var errResp struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &errResp) == nil && errResp.Message != "" {
			return nil, fmt.Errorf("server returned %d for dataset job [%s]: %s", resp.StatusCode, jobID, errResp.Message)
		}
		return nil, fmt.Errorf("server returned %d for dataset job [%s]", resp.StatusCode, jobID)
	}

	summary := map[string]string{}
	if err := json.Unmarshal(body, &summary); err != nil {
		return nil, fmt.Errorf("unable to decode dataset job [%s]: %w", jobID, err)
	}
	return summary, nil
}

func stringifySummary(summary map[string]string) string {
	buff := &bytes.Buffer{}
	table := tablewriter.NewWriter(buff)
	table.SetBorder(false)
	table.SetHeader(summaryFields)
	table.SetAlignment(tablewriter.ALIGN_LEFT)

	row := make([]string, len(summaryFields))
	for i, field := range summaryFields {
		row[i] = summary[field]
	}
	table.Append(row)
	table.Render()
	return buff.String()
}
