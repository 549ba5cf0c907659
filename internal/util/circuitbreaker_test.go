package util

import (
	"testing"
	"time"

	"go.uber.org/zap"
)

func TestCircuitBreakerOpensAtThreshold(t *testing.T) {
	cb := NewCircuitBreaker(3, time.Hour, zap.NewNop())

	cb.RecordFailure()
	cb.RecordFailure()
	if !cb.CanExecute() {
		t.Fatal("breaker should stay closed below threshold")
	}

	cb.RecordFailure()
	if cb.CanExecute() {
		t.Fatal("breaker should open at threshold")
	}
	if cb.State() != CircuitStateOpen {
		t.Fatalf("expected OPEN, got %s", cb.State())
	}
}

func TestCircuitBreakerHalfOpenAfterTimeout(t *testing.T) {
	cb := NewCircuitBreaker(1, 10*time.Millisecond, zap.NewNop())

	cb.RecordFailure()
	if cb.CanExecute() {
		t.Fatal("breaker should be open")
	}

	time.Sleep(20 * time.Millisecond)
	if !cb.CanExecute() {
		t.Fatal("breaker should allow a trial request after the reset timeout")
	}
	if cb.State() != CircuitStateHalfOpen {
		t.Fatalf("expected HALF_OPEN, got %s", cb.State())
	}

	cb.RecordSuccess()
	if cb.State() != CircuitStateClosed {
		t.Fatalf("expected CLOSED after recovery, got %s", cb.State())
	}
}

func TestCircuitBreakerHalfOpenFailureReopens(t *testing.T) {
	cb := NewCircuitBreaker(1, 10*time.Millisecond, zap.NewNop())

	cb.RecordFailure()
	time.Sleep(20 * time.Millisecond)
	cb.CanExecute() // transitions to half-open

	cb.RecordFailure()
	if cb.CanExecute() {
		t.Fatal("failed trial request should reopen the breaker")
	}
}

func TestCircuitBreakerSuccessResetsCount(t *testing.T) {
	cb := NewCircuitBreaker(2, time.Hour, zap.NewNop())

	cb.RecordFailure()
	cb.RecordSuccess()
	cb.RecordFailure()

	if !cb.CanExecute() {
		t.Fatal("success should reset the failure count")
	}
}
