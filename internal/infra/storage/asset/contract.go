package asset

import "github.com/avelis/ARB-BookingService/pkg/dbmetrics"

type DBExecutor = dbmetrics.DBExecutor
