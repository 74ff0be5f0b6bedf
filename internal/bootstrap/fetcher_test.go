// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package bootstrap

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/forward-auth-config/internal/logger"
	"github.com/MKhiriev/forward-auth-config/internal/mock"
	"github.com/MKhiriev/forward-auth-config/internal/rpc"
)

var errUnavailable = errors.New("connection refused")

func newTestLogger() (*logger.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return logger.NewWithWriter(&buf, "bootstrap-test"), &buf
}

func warnings(buf *bytes.Buffer) int {
	return strings.Count(buf.String(), `"level":"warn"`)
}

func testContext() *rpc.Context {
	return &rpc.Context{
		Domain:           "tenant.eu.auth0.com",
		TokenEndpoint:    "https://tenant.eu.auth0.com/oauth/token",
		LogoutEndpoint:   "https://tenant.eu.auth0.com/v2/logout",
		UserinfoEndpoint: "https://tenant.eu.auth0.com/userinfo",
		AuthorizeURL:     "https://tenant.eu.auth0.com/authorize",
		NonceMaxAge:      30,
	}
}

// ── Retry ────────────────────────────────────────────────────────────────────

func TestFetch_SucceedsOnThirdAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	log, buf := newTestLogger()

	gomock.InOrder(
		mockAdapter.EXPECT().GetContext(gomock.Any()).Return(nil, errUnavailable),
		mockAdapter.EXPECT().GetContext(gomock.Any()).Return(nil, errUnavailable),
		mockAdapter.EXPECT().GetContext(gomock.Any()).Return(testContext(), nil),
	)

	f := NewFetcher(mockAdapter, Policy{Backoff: 5 * time.Millisecond, Timeout: 5 * time.Second, MaxAttempts: 20}, log)
	props, err := f.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, warnings(buf))
	assert.Contains(t, buf.String(), "*errors.errorString:connection refused")
	assert.Equal(t, 3, f.Attempts())
	assert.Equal(t, StateSucceeded, f.State())

	assert.Equal(t, "tenant.eu.auth0.com", props.Domain)
	assert.Equal(t, "https://tenant.eu.auth0.com/oauth/token", props.TokenEndpoint)
	assert.Equal(t, "https://tenant.eu.auth0.com/v2/logout", props.LogoutEndpoint)
	assert.Equal(t, "https://tenant.eu.auth0.com/userinfo", props.UserinfoEndpoint)
	assert.Equal(t, "https://tenant.eu.auth0.com/authorize", props.AuthorizeURL)
	assert.Equal(t, int32(30), props.NonceMaxAge)
}

func TestFetch_SucceedsFirstTimeWithoutWarnings(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	log, buf := newTestLogger()

	mockAdapter.EXPECT().GetContext(gomock.Any()).Return(testContext(), nil)

	props, err := Fetch(context.Background(), mockAdapter, Policy{Backoff: time.Second, MaxAttempts: 1}, log)

	require.NoError(t, err)
	assert.Zero(t, warnings(buf))
	assert.Equal(t, "tenant.eu.auth0.com", props.Domain)
}

func TestFetch_AttemptCeilingExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	log, buf := newTestLogger()

	mockAdapter.EXPECT().GetContext(gomock.Any()).Return(nil, errUnavailable).Times(4)

	f := NewFetcher(mockAdapter, Policy{Backoff: time.Millisecond, Timeout: -1, MaxAttempts: 4}, log)
	props, err := f.Run(context.Background())

	require.Error(t, err)
	assert.Nil(t, props)
	assert.ErrorIs(t, err, ErrFetchExhausted)
	assert.ErrorIs(t, err, errUnavailable)

	var exhausted *FetchExhaustedError
	require.ErrorAs(t, err, &exhausted)
	assert.Equal(t, 4, exhausted.Attempts)
	assert.Equal(t, errUnavailable, exhausted.Last)

	assert.Equal(t, 4, warnings(buf))
	assert.Equal(t, StateFailed, f.State())
}

func TestFetch_TimeoutExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	log, buf := newTestLogger()

	mockAdapter.EXPECT().GetContext(gomock.Any()).Return(nil, errUnavailable).MinTimes(2)

	start := time.Now()
	f := NewFetcher(mockAdapter, Policy{Backoff: 10 * time.Millisecond, Timeout: 100 * time.Millisecond, MaxAttempts: -1}, log)
	_, err := f.Run(context.Background())

	require.ErrorIs(t, err, ErrFetchExhausted)
	assert.Less(t, time.Since(start), 2*time.Second)
	assert.Equal(t, f.Attempts(), warnings(buf))
}

func TestFetch_AbandonsInFlightAttempt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	log, buf := newTestLogger()

	mockAdapter.EXPECT().GetContext(gomock.Any()).DoAndReturn(func(ctx context.Context) (*rpc.Context, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	f := NewFetcher(mockAdapter, Policy{Backoff: time.Second, Timeout: 30 * time.Millisecond, MaxAttempts: 20}, log)
	_, err := f.Run(context.Background())

	require.ErrorIs(t, err, ErrFetchExhausted)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, 1, f.Attempts())
	assert.Equal(t, 1, warnings(buf))
}

func TestFetch_ParentContextCanceled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	ctx, cancel := context.WithCancel(context.Background())

	mockAdapter.EXPECT().GetContext(gomock.Any()).DoAndReturn(func(context.Context) (*rpc.Context, error) {
		cancel()
		return nil, errUnavailable
	})

	_, err := Fetch(ctx, mockAdapter, Policy{Backoff: time.Hour, Timeout: time.Hour}, logger.Nop())

	assert.ErrorIs(t, err, ErrFetchExhausted)
	assert.ErrorIs(t, err, errUnavailable)
}

func TestFetch_NilResponseIsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	log, buf := newTestLogger()

	gomock.InOrder(
		mockAdapter.EXPECT().GetContext(gomock.Any()).Return(nil, nil),
		mockAdapter.EXPECT().GetContext(gomock.Any()).Return(testContext(), nil),
	)

	_, err := Fetch(context.Background(), mockAdapter, Policy{Backoff: time.Millisecond, MaxAttempts: 2}, log)

	require.NoError(t, err)
	assert.Equal(t, 1, warnings(buf))
}

func TestFetch_InvalidPolicy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)

	_, err := Fetch(context.Background(), mockAdapter, Policy{}, logger.Nop())

	assert.ErrorIs(t, err, ErrInvalidPolicy)
}

func TestFetcher_RunsOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	mockAdapter.EXPECT().GetContext(gomock.Any()).Return(testContext(), nil)

	f := NewFetcher(mockAdapter, Policy{Backoff: time.Millisecond, MaxAttempts: 1}, logger.Nop())
	_, err := f.Run(context.Background())
	require.NoError(t, err)

	_, err = f.Run(context.Background())
	assert.Error(t, err)
}

// ── Application lookup through the fetched properties ───────────────────────

func TestFetch_PropertiesResolveApplications(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAdapter := mock.NewMockConfigServiceAdapter(ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().GetContext(gomock.Any()).Return(testContext(), nil)
	mockAdapter.EXPECT().GetApplication(ctx, "grafana").Return(&rpc.Application{
		Name:                  "grafana",
		Scope:                 "openid",
		RestrictedMethodsList: []string{"POST"},
	}, nil)

	props, err := Fetch(ctx, mockAdapter, Policy{Backoff: time.Millisecond, MaxAttempts: 1}, logger.Nop())
	require.NoError(t, err)

	app, err := props.ApplicationByNameOrDefault(ctx, "grafana")
	require.NoError(t, err)
	assert.Equal(t, "grafana", app.Name)
	assert.Equal(t, "openid", app.Scope)
	assert.Equal(t, []string{"POST"}, app.RestrictedMethods)
}
