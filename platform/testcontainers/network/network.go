package network

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

// Network is a labelled bridge network for one integration suite.
type Network struct {
	network *testcontainers.DockerNetwork
}

func NewNetwork(ctx context.Context, suite string) (*Network, error) {
	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			"project": "hako",
			"suite":   suite,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("create docker network for %s: %w", suite, err)
	}

	return &Network{network: net}, nil
}

func (n *Network) Name() string { return n.network.Name }

func (n *Network) Remove(ctx context.Context) error {
	return n.network.Remove(ctx)
}
