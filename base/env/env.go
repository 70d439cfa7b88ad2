package env

import (
	"os"
)

// PodName example: auctionhouse-api-6868d88fbd-bz8zv
func PodName() string {
	return os.Getenv("PODNAME")
}
