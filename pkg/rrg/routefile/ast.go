package routefile

// File is one parsed interchange file: a flat statement list, order
// significant only where the builder says so (types before tiles, nodes
// before edges).
type File struct {
	Statements []*Statement `@@*`
}

// Statement is one top-level statement.
type Statement struct {
	Device    *DeviceStmt    `  @@`
	ChanWidth *ChanWidthStmt `| @@`
	BlockType *BlockTypeStmt `| @@`
	Tile      *TileStmt      `| @@`
	Block     *BlockStmt     `| @@`
	Switch    *SwitchStmt    `| @@`
	Node      *NodeStmt      `| @@`
	Edge      *EdgeStmt      `| @@`
	Net       *NetStmt       `| @@`
}

// DeviceStmt declares the logic grid dimensions, excluding the IO ring.
// Example: device 4 4
type DeviceStmt struct {
	NX int `KwDevice @Int`
	NY int `@Int`
}

// ChanWidthStmt lists the per-index widths of one channel axis.
// Example: chanwidth x 2 2 2 2 2 2
type ChanWidthStmt struct {
	Axis   string `KwChanWidth @Ident`
	Widths []int  `@Int+`
}

// BlockTypeStmt declares a block type and its pin placement.
// Example:
//
//	blocktype clb index 3 size 1 1 pins 4 capacity 1 {
//	    pin 0 output on 0 0 top
//	    pin 1 on 0 0 right
//	}
type BlockTypeStmt struct {
	Name     string    `KwBlockType @Ident`
	Index    int       `KwIndex @Int`
	Width    int       `KwSize @Int`
	Height   int       `@Int`
	NumPins  int       `KwPins @Int`
	Capacity int       `KwCapacity @Int`
	Pins     []*PinDef `LBrace @@* RBrace`
}

// PinDef places one pin on one side of one sub-tile.
type PinDef struct {
	Num    int    `KwPin @Int`
	Output bool   `@KwOutput?`
	W      int    `KwOn @Int`
	H      int    `@Int`
	Side   string `@Ident`
}

// TileStmt assigns a block type to a grid location. Tiles of a large
// block other than the root carry their offset from it.
// Example: tile 1 1 clb
type TileStmt struct {
	X      int         `KwTile @Int`
	Y      int         `@Int`
	Type   string      `@Ident`
	Offset *OffsetSpec `@@?`
}

// OffsetSpec is the sub-tile offset of a non-root tile of a large block.
type OffsetSpec struct {
	W int `KwOffset @Int`
	H int `@Int`
}

// BlockStmt places a named netlist block.
// Example: block b0 at 1 1 0
type BlockStmt struct {
	Name    string `KwBlock @Ident`
	X       int    `KwAt @Int`
	Y       int    `@Int`
	SubTile int    `@Int`
}

// SwitchStmt declares one switch descriptor.
// Example: switch 0 mux buffered
type SwitchStmt struct {
	ID   int    `KwSwitch @Int`
	Name string `@Ident`
	Kind string `@(KwBuffered | KwPass)`
}

// NodeStmt declares one routing-resource node.
// Example: node 2 CHANX 1 1 2 1 ptc 0 dir INC cap 1 occ 1
type NodeStmt struct {
	ID    int    `KwNode @Int`
	Type  string `@Ident`
	XLow  int    `@Int`
	YLow  int    `@Int`
	XHigh int    `@Int`
	YHigh int    `@Int`
	Ptc   int    `KwPtc @Int`
	Dir   string `(KwDir @Ident)?`
	Cap   int    `KwCap @Int`
	Occ   *int   `(KwOcc @Int)?`
}

// EdgeStmt declares one directed edge.
// Example: edge 1 2 switch 0
type EdgeStmt struct {
	From   int `KwEdge @Int`
	To     int `@Int`
	Switch int `KwSwitch @Int`
}

// NetStmt declares one net: driver and sink blocks by name, plus the
// routed trace as a node ID sequence. An empty body means unrouted.
// Example:
//
//	net n0 driver b0 sinks b1 {
//	    route 0 1 2 4 5
//	}
type NetStmt struct {
	Global bool     `@KwGlobal?`
	Name   string   `KwNet @Ident`
	Driver string   `KwDriver @Ident`
	Sinks  []string `KwSinks @Ident+`
	Route  []int    `LBrace (KwRoute @Int+)? RBrace`
}
