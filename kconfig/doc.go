// Package kconfig models a kernel build description and the fragment it
// produces.
//
// A description is a YAML mapping with three required keys:
//
//	version: "6.6"
//	type: defconfig
//	configs:
//	  CONFIG_DEBUG_INFO: y
//	  CONFIG_LOG_BUF_SHIFT: 18
//
// Config values are kept as the literal scalar text, in mapping order.
// Lists and mappings under configs are rejected with a config.KindType error.
package kconfig
