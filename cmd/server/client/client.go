// Package client provides commands for the hero planner admin gRPC service
package client

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/KirkDiggler/hero-planner/internal/errors"
	"github.com/KirkDiggler/hero-planner/internal/handlers/api/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Admin client commands for the hero planner",
	Long:  `Client commands inspect and correct tracked heroes through the admin gRPC API.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(manageHeroCmd)
	ClientCmd.AddCommand(calculateRelicsCmd)
	ClientCmd.AddCommand(listTrackedCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// createPlannerClient creates a planner service client
func createPlannerClient() (v1alpha1.PlannerServiceClient, func(), error) {
	conn, err := createConnection()
	if err != nil {
		return nil, nil, err
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return v1alpha1.NewPlannerServiceClient(conn), cleanup, nil
}

// callError turns a status error back into a readable message
func callError(action string, err error) error {
	converted := errors.FromGRPCError(err)
	if rule, ok := errors.GetMeta(converted)["rule"]; ok {
		return fmt.Errorf("failed to %s: %s (rule %v)", action, errors.GetMessage(converted), rule)
	}
	return fmt.Errorf("failed to %s: %s", action, errors.GetMessage(converted))
}

func printStruct(resp *structpb.Struct) error {
	out, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(resp)
	if err != nil {
		return fmt.Errorf("failed to format response: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
