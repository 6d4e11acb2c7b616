package pkg

import "github.com/bwmarrin/snowflake"

// NewNode(1) only fails for out-of-range node numbers.
var idNode, _ = snowflake.NewNode(1)

// InitIDNode rebinds the generator to a configured machine number so
// multiple instances never mint colliding ids.
func InitIDNode(machine int64) error {
	n, err := snowflake.NewNode(machine)
	if err != nil {
		return err
	}
	idNode = n
	return nil
}

// NewID returns a time-sortable snowflake id as a decimal string.
func NewID() string {
	return idNode.Generate().String()
}
