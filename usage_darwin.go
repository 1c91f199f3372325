// Copyright (c) 2012 VMware, Inc.

package fibloop

// ru_maxrss is reported in bytes.
const maxrssUnit = 1
