package jaeger

import (
	"io"
	"time"

	"VidTube.com/config"
	"github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	jaegercfg "github.com/uber/jaeger-client-go/config"
)

// InitJaeger wires the global opentracing tracer to a local jaeger agent.
// The returned closer flushes buffered spans on shutdown.
func InitJaeger(serviceName string) io.Closer {
	cfg := jaegercfg.Configuration{
		ServiceName: serviceName,
		Sampler: &jaegercfg.SamplerConfig{
			Type:  "const",
			Param: 1,
		},
		Reporter: &jaegercfg.ReporterConfig{
			LogSpans:            false,
			BufferFlushInterval: 1 * time.Second,
			LocalAgentHostPort:  config.ConfigInfo.Jaeger.Addr,
		},
	}

	tracer, closer, err := cfg.NewTracer()
	if err != nil {
		logrus.Errorf("jaeger init failed: %v", err)
		return io.NopCloser(nil)
	}
	opentracing.SetGlobalTracer(tracer)
	return closer
}
