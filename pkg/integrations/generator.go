package integrations

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/scenecraft/scenecraft/pkg/bridge"
)

const (
	generatorPollInterval = 5 * time.Second
	generatorPollBudget   = 3 * time.Minute
)

// GeneratorAdapter drives text-to-3D generation on the remote host:
// submit a job, poll until done, import the result.
type GeneratorAdapter struct {
	commander    Commander
	pollInterval time.Duration
	pollBudget   time.Duration
}

// NewGeneratorAdapter creates a generator adapter over the bridge.
func NewGeneratorAdapter(commander Commander) *GeneratorAdapter {
	return &GeneratorAdapter{
		commander:    commander,
		pollInterval: generatorPollInterval,
		pollBudget:   generatorPollBudget,
	}
}

// createJobResponse covers both provider modes the host may be configured
// with. The per-task mode echoes a job list with a subscription key; the
// overall-status mode echoes a single request id.
type createJobResponse struct {
	UUID string `json:"uuid"`
	Jobs struct {
		UUIDs           []string `json:"uuids"`
		SubscriptionKey string   `json:"subscription_key"`
	} `json:"jobs"`
	RequestID string `json:"request_id"`
	Error     string `json:"error"`
}

type pollJobsResponse struct {
	// Per-task mode: one status per job.
	Jobs []struct {
		UUID   string `json:"uuid"`
		Status string `json:"status"`
	} `json:"jobs"`
	// Overall-status mode.
	Status string `json:"status"`
	Error  string `json:"error"`
}

// Generate submits a generation job for the prompt, polls it to
// completion and imports the produced asset into the scene.
func (a *GeneratorAdapter) Generate(ctx context.Context, prompt string) (*AssetRef, error) {
	raw, err := a.commander.Send(ctx, bridge.CmdCreateRodinJob, map[string]any{
		"text_prompt": prompt,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create generation job: %w", err)
	}

	var created createJobResponse
	if err := json.Unmarshal(raw, &created); err != nil {
		return nil, fmt.Errorf("failed to parse job creation response: %w", err)
	}
	if created.Error != "" {
		return nil, fmt.Errorf("generation job rejected: %s", created.Error)
	}

	// The creation response decides the polling mode: a subscription key
	// means per-task statuses, a bare request id means one overall status.
	perTask := created.Jobs.SubscriptionKey != ""
	if !perTask && created.RequestID == "" {
		return nil, fmt.Errorf("job creation response carries neither subscription key nor request id")
	}

	if err := a.awaitCompletion(ctx, created, perTask); err != nil {
		return nil, err
	}

	return a.importResult(ctx, created, prompt, perTask)
}

func (a *GeneratorAdapter) awaitCompletion(ctx context.Context, created createJobResponse, perTask bool) error {
	params := map[string]any{}
	if perTask {
		params["subscription_key"] = created.Jobs.SubscriptionKey
	} else {
		params["request_id"] = created.RequestID
	}

	deadline := time.Now().Add(a.pollBudget)
	ticker := time.NewTicker(a.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
		if time.Now().After(deadline) {
			return ErrGenerationTimeout
		}

		raw, err := a.commander.Send(ctx, bridge.CmdPollRodinJobStatus, params)
		if err != nil {
			// Transient poll failures do not kill the job; the budget
			// bounds how long we keep trying.
			slog.Debug("Generation poll failed", "error", err)
			continue
		}

		var poll pollJobsResponse
		if err := json.Unmarshal(raw, &poll); err != nil {
			slog.Debug("Generation poll response unparsable", "error", err)
			continue
		}

		done, err := pollVerdict(&poll, perTask)
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// pollVerdict reduces a poll response to (completed, failure).
func pollVerdict(poll *pollJobsResponse, perTask bool) (bool, error) {
	if poll.Error != "" {
		return false, fmt.Errorf("generation failed: %s", poll.Error)
	}
	if perTask {
		if len(poll.Jobs) == 0 {
			return false, nil
		}
		for _, job := range poll.Jobs {
			switch strings.ToLower(job.Status) {
			case "failed", "error", "cancelled":
				return false, fmt.Errorf("generation task %s failed", job.UUID)
			case "done", "completed":
				// keep scanning
			default:
				return false, nil
			}
		}
		return true, nil
	}
	switch strings.ToLower(poll.Status) {
	case "completed", "done":
		return true, nil
	case "failed", "error", "cancelled":
		return false, fmt.Errorf("generation failed with status %q", poll.Status)
	default:
		return false, nil
	}
}

func (a *GeneratorAdapter) importResult(ctx context.Context, created createJobResponse, prompt string, perTask bool) (*AssetRef, error) {
	name := assetNameFromPrompt(prompt)
	params := map[string]any{"name": name}
	if perTask {
		params["task_uuid"] = created.UUID
	} else {
		params["request_id"] = created.RequestID
	}

	raw, err := a.commander.Send(ctx, bridge.CmdImportGeneratedAsset, params)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrImportFailed, err)
	}

	var imported struct {
		Succeed bool   `json:"succeed"`
		Name    string `json:"name"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &imported); err == nil {
		if imported.Error != "" || (!imported.Succeed && imported.Name == "") {
			return nil, fmt.Errorf("%w: %s", ErrImportFailed, imported.Error)
		}
		if imported.Name != "" {
			name = imported.Name
		}
	}

	return &AssetRef{Name: name, Type: "generated"}, nil
}

// assetNameFromPrompt derives a short object name from the prompt text.
func assetNameFromPrompt(prompt string) string {
	fields := strings.Fields(strings.TrimSpace(prompt))
	if len(fields) == 0 {
		return "Generated_Asset"
	}
	if len(fields) > 4 {
		fields = fields[:4]
	}
	return strings.Join(fields, "_")
}
