package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/UnknownOlympus/hermes/internal/share"
)

// CopyText renders the clipboard summary of the last successful request.
func (o *Orchestrator) CopyText() (string, error) {
	snap := o.Snapshot()
	if snap.Status != StatusSucceeded || snap.Address == nil || snap.Coordinates == nil {
		return "", ErrNoAddress
	}

	return o.messages.CopyText(*snap.Address, *snap.Coordinates), nil
}

// Copy writes the summary of the last successful request to cb.
func (o *Orchestrator) Copy(cb share.Clipboard) (string, error) {
	text, err := o.CopyText()
	if err != nil {
		return "", err
	}

	if err = cb.WriteAll(text); err != nil {
		return "", fmt.Errorf("failed to copy address: %w", err)
	}

	return text, nil
}

// SharePayload builds the share payload of the last successful request,
// including the map link.
func (o *Orchestrator) SharePayload() (share.Payload, error) {
	snap := o.Snapshot()
	if snap.Status != StatusSucceeded || snap.Address == nil || snap.Coordinates == nil {
		return share.Payload{}, ErrNoAddress
	}

	return share.Payload{
		Title: o.messages.ShareTitle(),
		Text:  o.messages.ShareText(*snap.Address),
		URL:   share.MapURL(*snap.Coordinates),
	}, nil
}

// Share hands the last result to sharer. Without a sharer, or when the
// platform cannot share, the summary is copied to cb instead.
func (o *Orchestrator) Share(ctx context.Context, sharer share.Sharer, cb share.Clipboard) error {
	payload, err := o.SharePayload()
	if err != nil {
		return err
	}

	if sharer != nil {
		err = sharer.Share(ctx, payload)
		if err == nil {
			return nil
		}
		if !errors.Is(err, share.ErrUnsupported) {
			return fmt.Errorf("failed to share location: %w", err)
		}
		o.log.DebugContext(ctx, "Share is not supported, copying instead")
	}

	_, err = o.Copy(cb)

	return err
}
