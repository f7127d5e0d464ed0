package logs

import (
	"context"
	"fmt"
)

func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return fmt.Errorf("%w [span %s]", err, v.(Span))
}
