package grpc

import (
	"context"
	"fmt"

	z "github.com/Oudwins/zog"
	"golang.org/x/time/rate"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"liyu1981.xyz/model-monitor-service/pkg/app"
	"liyu1981.xyz/model-monitor-service/pkg/common"
	"liyu1981.xyz/model-monitor-service/pkg/models"
)

const (
	fieldSuccess   = "success"
	fieldMessage   = "message"
	fieldModelID   = "model_id"
	fieldMonitorID = "monitor_id"
	fieldMonitors  = "monitors"
	fieldMonitor   = "monitor"
	fieldRate      = "rate"
	fieldBurst     = "burst"
)

func stringField(s *structpb.Struct, key string) string {
	return s.GetFields()[key].GetStringValue()
}

func validateID(id *string) z.ZogIssueList {
	var idValidator = z.String().Min(1).Required()
	return idValidator.Validate(id)
}

// reply builds the in-band status response. Extra fields must be values
// structpb.NewValue accepts.
func reply(success bool, message string, extra map[string]any) (*structpb.Struct, error) {
	fields := map[string]any{
		fieldSuccess: success,
		fieldMessage: message,
	}
	for k, v := range extra {
		fields[k] = v
	}
	resp, err := structpb.NewStruct(fields)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "encode response: %v", err)
	}
	return resp, nil
}

func fail(message string) (*structpb.Struct, error) {
	return reply(false, message, nil)
}

func monitorValue(m models.Monitor) map[string]any {
	methods := []any{}
	if decoded, err := m.AlertMethods(); err == nil {
		methods = common.Mapper(decoded, func(method models.AlertMethod) any {
			return method.String()
		})
	}
	return map[string]any{
		"id":           m.ID,
		"model_id":     m.ModelID,
		"title":        m.Title,
		"cadence":      string(m.Cadence),
		"metric":       string(m.Metric),
		"variance":     m.Variance,
		"methods":      methods,
		"last_updated": m.LastUpdated,
	}
}

func (s *MonitorServer) ListMonitors(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	modelID := stringField(req, fieldModelID)
	if err := validateID(&modelID); err != nil {
		return fail(fmt.Sprintf("validation error: %v", err))
	}

	monitors, err := s.App.Monitor.GetModelMonitors(s.App.Db.Conn.WithContext(ctx), modelID)
	if err != nil {
		return fail(err.Error())
	}

	return reply(true, "OK", map[string]any{
		fieldMonitors: common.Mapper(monitors, func(m models.Monitor) any {
			return monitorValue(m)
		}),
	})
}

func (s *MonitorServer) GetMonitor(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	modelID := stringField(req, fieldModelID)
	if err := validateID(&modelID); err != nil {
		return fail(fmt.Sprintf("validation error: %v", err))
	}
	monitorID := stringField(req, fieldMonitorID)
	if err := validateID(&monitorID); err != nil {
		return fail(fmt.Sprintf("validation error: %v", err))
	}

	monitor, err := s.App.Monitor.GetMonitor(s.App.Db.Conn.WithContext(ctx), modelID, monitorID)
	if err != nil {
		return fail(err.Error())
	}

	return reply(true, "OK", map[string]any{
		fieldMonitor: monitorValue(*monitor),
	})
}

func (s *MonitorServer) SetLimiter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	modelID := stringField(req, fieldModelID)
	if err := validateID(&modelID); err != nil {
		return fail(fmt.Sprintf("validation error: %v", err))
	}

	modelRate := req.GetFields()[fieldRate].GetNumberValue()
	var rateValidator = z.Float64().GT(0).Required()
	if err := rateValidator.Validate(&modelRate); err != nil {
		return fail(fmt.Sprintf("validation error: %v", err))
	}

	modelBurst := int(req.GetFields()[fieldBurst].GetNumberValue())
	var burstValidator = z.Int().GT(0).Required()
	if err := burstValidator.Validate(&modelBurst); err != nil {
		return fail(fmt.Sprintf("validation error: %v", err))
	}

	if s.RateLimiterStore == nil {
		return fail("RateLimiterStore is not used. No effect.")
	}

	s.RateLimiterStore.SetLimiter(app.ModelKey(modelID), rate.Limit(modelRate), modelBurst)
	return reply(true, "OK", nil)
}
