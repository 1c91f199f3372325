// Copyright (c) 2012 VMware, Inc.

package fibloop

// ru_maxrss is reported in kilobytes.
const maxrssUnit = 1024
