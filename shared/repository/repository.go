// Package repository holds generic collection accessors over the supported
// document stores. Each accessor is scoped to one entity and traces every
// call under the repository scope.
package repository

import (
	"context"
	"fmt"
	"todonotes/infras/otel"
	"todonotes/shared/constant"
)

func newScope(ctx context.Context, tracer otel.Otel, entity, operation string) (context.Context, otel.Scope) {
	return tracer.NewScope(ctx, constant.OtelRepositoryScopeName, fmt.Sprintf("%s.%s.%s", constant.OtelRepositoryScopeName, entity, operation))
}
