package wordcab

import (
	"context"

	"github.com/kbukum/wordcab-go/core"
	"github.com/kbukum/wordcab-go/logger"
	"github.com/kbukum/wordcab-go/resilience"
)

// WaitForJob re-fetches a job until it reaches a terminal status. The caller
// supplies the polling cadence; there is no default interval. The returned
// job may have ended in the Error or Deleted status, which the caller is
// expected to inspect.
func (c *Client) WaitForJob(ctx context.Context, jobName string, cfg resilience.PollConfig) (*core.Job, error) {
	last := ""
	return resilience.Poll(ctx, cfg, func(ctx context.Context) (*core.Job, bool, error) {
		job, err := c.RetrieveJob(ctx, jobName)
		if err != nil {
			return nil, false, err
		}
		if status := string(job.Status); status != last {
			last = status
			c.log.Debug("job status changed", map[string]any{
				logger.FieldJobName:   jobName,
				logger.FieldJobStatus: status,
			})
		}
		return job, job.Status.Terminal(), nil
	})
}
