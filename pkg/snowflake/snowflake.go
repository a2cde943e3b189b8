package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenKey is the base36 form used for object names.
func GenKey() string {
	return node.Generate().Base36()
}
