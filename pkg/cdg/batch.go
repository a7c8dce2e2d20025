package cdg

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/fivetwenty-io/cdg-client/internal/constants"
)

// BatchOperation represents a single fetch in a batch.
type BatchOperation struct {
	ID       string
	Endpoint Endpoint
	// Shape: materialize the response as this shape when set. Empty keeps the structural form.
	Shape    ShapeTag
	Callback func(result *BatchResult)
}

// BatchResult represents the result of a batch operation.
type BatchResult struct {
	ID         string
	Success    bool
	Structural *Structural
	Data       any
	Error      error
	Duration   time.Duration
}

// BatchExecutor executes batch operations with bounded concurrency.
type BatchExecutor struct {
	client      Client
	concurrency int
	timeout     time.Duration
}

// NewBatchExecutor creates a new batch executor.
func NewBatchExecutor(client Client, concurrency int) *BatchExecutor {
	if concurrency <= 0 {
		concurrency = constants.DefaultConcurrencyLimit
	}

	return &BatchExecutor{
		client:      client,
		concurrency: concurrency,
		timeout:     constants.DefaultHTTPTimeout,
	}
}

// SetTimeout sets the per-operation timeout.
func (b *BatchExecutor) SetTimeout(timeout time.Duration) {
	b.timeout = timeout
}

// Execute runs a batch of operations. Results are in operation order; a failed operation
// does not stop the others.
func (b *BatchExecutor) Execute(ctx context.Context, operations []BatchOperation) ([]BatchResult, error) {
	if len(operations) == 0 {
		return nil, ErrNoEndpoints
	}

	results := make([]BatchResult, len(operations))

	var waitGroup sync.WaitGroup

	semaphore := make(chan struct{}, b.concurrency)

	for index, operation := range operations {
		waitGroup.Add(1)

		go func(index int, operation BatchOperation) {
			defer waitGroup.Done()

			// Acquire semaphore
			semaphore <- struct{}{}

			defer func() { <-semaphore }()

			opCtx, cancel := context.WithTimeout(ctx, b.timeout)
			defer cancel()

			start := time.Now()
			result := b.executeOperation(opCtx, operation)
			result.Duration = time.Since(start)
			results[index] = *result

			if operation.Callback != nil {
				operation.Callback(result)
			}
		}(index, operation)
	}

	waitGroup.Wait()

	return results, nil
}

func (b *BatchExecutor) executeOperation(ctx context.Context, operation BatchOperation) *BatchResult {
	result := &BatchResult{ID: operation.ID}

	structural, err := b.client.Fetch(ctx, operation.Endpoint)
	if err != nil {
		result.Error = fmt.Errorf("fetching %s: %w", operation.Endpoint.Kind(), err)

		return result
	}

	result.Structural = structural
	result.Data = structural

	if operation.Shape != "" {
		data, err := MaterializeTag(structural, operation.Shape)
		if err != nil {
			result.Error = err

			return result
		}

		result.Data = data
	}

	result.Success = true

	return result
}

// BatchBuilder helps build batch operations.
type BatchBuilder struct {
	operations []BatchOperation
}

// NewBatchBuilder creates a new batch builder.
func NewBatchBuilder() *BatchBuilder {
	return &BatchBuilder{
		operations: make([]BatchOperation, 0),
	}
}

// AddFetch adds a fetch kept in structural form.
func (b *BatchBuilder) AddFetch(id string, endpoint Endpoint) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{ID: id, Endpoint: endpoint})

	return b
}

// AddShaped adds a fetch materialized as the endpoint's default shape.
func (b *BatchBuilder) AddShaped(id string, endpoint Endpoint) *BatchBuilder {
	b.operations = append(b.operations, BatchOperation{ID: id, Endpoint: endpoint, Shape: endpoint.Shape()})

	return b
}

// AddOperation adds a custom operation.
func (b *BatchBuilder) AddOperation(operation BatchOperation) *BatchBuilder {
	b.operations = append(b.operations, operation)

	return b
}

// Build returns the built operations.
func (b *BatchBuilder) Build() []BatchOperation {
	return b.operations
}
