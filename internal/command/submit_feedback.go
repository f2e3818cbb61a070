package command

import (
	"context"
	"fmt"
	"strings"

	"github.com/claraboia/jcreader/internal/datasources"
	"github.com/claraboia/jcreader/internal/domain"
)

var _ Command[domain.Feedback, domain.FeedbackReceipt] = (*SubmitFeedback)(nil)

// SubmitFeedback sends a rating with an optional comment and screenshot.
// Sender fields left blank are filled with the site's anonymous defaults.
type SubmitFeedback struct {
	FeedbackSubmitter datasources.FeedbackSubmitter
}

func (c *SubmitFeedback) Execute(ctx context.Context, feedback domain.Feedback) (domain.FeedbackReceipt, error) {
	feedback = feedback.WithDefaults()
	feedback.Comment = strings.TrimSpace(feedback.Comment)
	if err := validateForm(feedback); err != nil {
		return domain.FeedbackReceipt{}, err
	}

	receipt, err := c.FeedbackSubmitter.SubmitFeedback(ctx, feedback)
	if err != nil {
		return domain.FeedbackReceipt{}, fmt.Errorf("submitting feedback: %w", err)
	}
	if !receipt.Success {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "site refused feedback", "message", receipt.Message)
	}
	return receipt, nil
}
