// Package camundatest provides an in-memory worker.JobClient. Commands built
// from it are the real zeebe commands; only the gateway is replaced, so tests
// see exactly the requests a broker would receive.
package camundatest

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/camunda/zeebe/clients/go/v8/pkg/commands"
	"github.com/camunda/zeebe/clients/go/v8/pkg/entities"
	"github.com/camunda/zeebe/clients/go/v8/pkg/pb"
	"google.golang.org/grpc"
)

// Gateway records job commands. Every other gateway call panics.
type Gateway struct {
	pb.GatewayClient

	mu        sync.Mutex
	Completed []*pb.CompleteJobRequest
	Failed    []*pb.FailJobRequest
	Thrown    []*pb.ThrowErrorRequest
}

func (g *Gateway) CompleteJob(_ context.Context, in *pb.CompleteJobRequest, _ ...grpc.CallOption) (*pb.CompleteJobResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Completed = append(g.Completed, in)
	return &pb.CompleteJobResponse{}, nil
}

func (g *Gateway) FailJob(_ context.Context, in *pb.FailJobRequest, _ ...grpc.CallOption) (*pb.FailJobResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Failed = append(g.Failed, in)
	return &pb.FailJobResponse{}, nil
}

func (g *Gateway) ThrowError(_ context.Context, in *pb.ThrowErrorRequest, _ ...grpc.CallOption) (*pb.ThrowErrorResponse, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.Thrown = append(g.Thrown, in)
	return &pb.ThrowErrorResponse{}, nil
}

// JobClient implements worker.JobClient on top of a Gateway.
type JobClient struct {
	Gateway *Gateway
}

func NewJobClient() *JobClient {
	return &JobClient{Gateway: &Gateway{}}
}

func noRetry(context.Context, error) bool { return false }

func (c *JobClient) NewCompleteJobCommand() commands.CompleteJobCommandStep1 {
	return commands.NewCompleteJobCommand(c.Gateway, noRetry)
}

func (c *JobClient) NewFailJobCommand() commands.FailJobCommandStep1 {
	return commands.NewFailJobCommand(c.Gateway, noRetry)
}

func (c *JobClient) NewThrowErrorCommand() commands.ThrowErrorCommandStep1 {
	return commands.NewThrowErrorCommand(c.Gateway, noRetry)
}

// CompletedVariables decodes the variables of the only completed job into out.
// It reports false when no job or more than one job was completed.
func (c *JobClient) CompletedVariables(out interface{}) bool {
	c.Gateway.mu.Lock()
	defer c.Gateway.mu.Unlock()
	if len(c.Gateway.Completed) != 1 {
		return false
	}
	return json.Unmarshal([]byte(c.Gateway.Completed[0].GetVariables()), out) == nil
}

// ThrownCode returns the error code of the only thrown BPMN error, or "".
func (c *JobClient) ThrownCode() string {
	c.Gateway.mu.Lock()
	defer c.Gateway.mu.Unlock()
	if len(c.Gateway.Thrown) != 1 {
		return ""
	}
	return c.Gateway.Thrown[0].GetErrorCode()
}

// NewJob builds an activated job carrying variables as JSON.
func NewJob(key int64, taskType string, variables interface{}) entities.Job {
	data, _ := json.Marshal(variables)
	return entities.Job{ActivatedJob: &pb.ActivatedJob{
		Key:                key,
		Type:               taskType,
		ProcessInstanceKey: key * 10,
		BpmnProcessId:      "emis-assessment",
		ElementId:          "Activity_" + taskType,
		CustomHeaders:      "{}",
		Worker:             "test-worker",
		Retries:            3,
		Variables:          string(data),
	}}
}

// NewRawJob is NewJob with the variables string taken verbatim.
func NewRawJob(key int64, taskType, variables string) entities.Job {
	job := NewJob(key, taskType, nil)
	job.Variables = variables
	return job
}
