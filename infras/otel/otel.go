package otel

import (
	"context"
	"fmt"
	"todonotes/config"

	"github.com/rs/zerolog/log"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
	"google.golang.org/grpc/credentials/insecure"
)

type Otel interface {
	NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope)
}

type otelImpl struct {
	TracerProvider *trace.TracerProvider
}

func (o *otelImpl) NewScope(ctx context.Context, scopeName, spanName string) (context.Context, Scope) {
	ctx, span := o.TracerProvider.Tracer(scopeName).Start(ctx, spanName)

	return ctx, NewScope(span)
}

// New builds the tracer provider. Spans are only exported when an OTLP
// endpoint is configured; the cleanup flushes and shuts the provider down.
func New(ctx context.Context, config *config.Config) (Otel, func(), error) {
	opts := []trace.TracerProviderOption{
		trace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceNameKey.String(config.App.Name),
		)),
	}

	endpoint := config.External.Otel.Endpoint
	if endpoint != "" {
		exporter, err := otlptracegrpc.New(ctx,
			otlptracegrpc.WithEndpoint(endpoint),
			otlptracegrpc.WithTLSCredentials(insecure.NewCredentials()),
		)
		if err != nil {
			log.Error().Err(err).Msg("Failed to create OTLP exporter")

			return nil, nil, fmt.Errorf("failed to create otlp exporter: %w", err)
		}

		opts = append(opts, trace.WithBatcher(exporter))
	}

	traceProvider := trace.NewTracerProvider(opts...)

	// Set tracer provider global
	otel.SetTracerProvider(traceProvider)

	cleanup := func() {
		if err := traceProvider.Shutdown(context.Background()); err != nil {
			log.Warn().Err(err).Msg("Failed to shut down tracer provider")
		}
	}

	return &otelImpl{
		TracerProvider: traceProvider,
	}, cleanup, nil
}
