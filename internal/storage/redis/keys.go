package redis

import (
	"fmt"
	"strings"
)

// Key prefix for all roster data
const keyPrefix = "roster"

// playerKey returns the Redis key for a Player
func playerKey(id string) string {
	return fmt.Sprintf("%s:player:%s", keyPrefix, id)
}

// playerOrderKey returns the Redis key for the LIST of player ids in insertion order
func playerOrderKey() string {
	return fmt.Sprintf("%s:idx:players", keyPrefix)
}

// accountKey returns the Redis key for an Account
func accountKey(id string) string {
	return fmt.Sprintf("%s:account:%s", keyPrefix, id)
}

// emailIndexKey returns the Redis key for the email -> account id index
func emailIndexKey(correo string) string {
	return fmt.Sprintf("%s:idx:email:%s", keyPrefix, strings.ToLower(strings.TrimSpace(correo)))
}
