package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/erosion-server/internal/logger"
	"github.com/MKhiriev/erosion-server/internal/store"
	"github.com/MKhiriev/erosion-server/internal/validators"
	"github.com/MKhiriev/erosion-server/models"
)

// resourceError converts store errors for the named resource into service
// errors. Unknown errors are wrapped with msg.
func resourceError(err error, resource, msg string) error {
	if errors.Is(err, store.ErrNotFound) {
		return &NotFoundError{Resource: resource}
	}
	return fmt.Errorf("%s: %w", msg, err)
}

// patch runs the partial update flow shared by every resource: the row must
// exist, the body must carry at least one truthy value, and then every
// supplied field is written.
func patch(
	ctx context.Context,
	funcName, resource string,
	id int64,
	input models.Fielder,
	updateValidator validators.Validator,
	exists func(context.Context, int64) error,
	update func(context.Context, int64, map[string]any) error,
) error {
	log := logger.FromContext(ctx)

	if err := exists(ctx, id); err != nil {
		return resourceError(err, resource, "error getting "+resource)
	}

	if err := updateValidator.Validate(ctx, input); err != nil {
		log.Debug().Err(err).Str("func", funcName).Int64("id", id).Msg("invalid update body")
		return err
	}

	if err := update(ctx, id, models.SuppliedValues(input)); err != nil {
		log.Err(err).Str("func", funcName).Int64("id", id).Msg("update failed")
		return resourceError(err, resource, "error updating "+resource)
	}
	return nil
}
