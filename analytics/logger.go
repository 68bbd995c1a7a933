package analytics

import (
	"os"
	"sort"

	"github.com/mohitkumar/engage/step"
	"github.com/mohitkumar/engage/visibility"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

type LogFileDataCollector struct {
	fileName string
	logger   *zap.Logger
}

func NewLogFileDataCollector(fileName string) (*LogFileDataCollector, error) {
	enccoderConfig := zap.NewProductionEncoderConfig()
	enccoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	enccoderConfig.StacktraceKey = ""
	fileEncoder := zapcore.NewJSONEncoder(enccoderConfig)
	logFile, err := os.OpenFile(fileName, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return nil, err
	}
	core := zapcore.NewCore(fileEncoder, zapcore.AddSync(logFile), zapcore.InfoLevel)
	return &LogFileDataCollector{
		fileName: fileName,
		logger:   zap.New(core),
	}, nil
}

func (lc *LogFileDataCollector) RecordEvaluation(engagementId string, stepId step.Id, decisions visibility.Decisions) {
	shown := make([]string, 0, len(decisions))
	editable := make([]string, 0, len(decisions))
	for name, d := range decisions {
		if d.Visible() {
			shown = append(shown, name)
		}
		if d.Enabled() {
			editable = append(editable, name)
		}
	}
	sort.Strings(shown)
	sort.Strings(editable)
	lc.logger.Info("evaluation",
		zap.String("engagement", engagementId),
		zap.Int("stepId", int(stepId)),
		zap.String("step", stepId.String()),
		zap.Strings("visible", shown),
		zap.Strings("enabled", editable),
	)
}

func (lc *LogFileDataCollector) Close() error {
	return lc.logger.Sync()
}
