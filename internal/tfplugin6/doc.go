// This file documents tfplugin6's relationship to the upstream plugin
// ecosystem. Nothing here is imported; it exists to record why.
//
// The real protocol is defined by HashiCorp's tfplugin6.proto and consumed
// by Terraform core through github.com/hashicorp/terraform-plugin-go,
// whose generated tfplugin6 package is internal to that module and not
// importable. The plugin process handshake and lifecycle this module's
// transport package implements follow github.com/hashicorp/go-plugin's
// conventions (the handshake line format, the PLUGIN_* environment
// variables, the sibling GRPCController service) without depending on that
// module directly — this core is the plugin, not a consumer of go-plugin's
// client-side machinery, and go-plugin's server-side pieces assume a
// net/rpc-era plumbing this module does not need.
package tfplugin6
