/*
TRAFFICD is a basic HTTP server that exposes a single endpoint
for running set operations over interval collections. Requests
go here:

http://localhost:8094/intervals

The request body is a JSON document with the operation name and
the two operand sets as parallel arrays of start and stop values
in Unix seconds:

	{
	  "op": "union",
	  "left":  {"start": [1647861000], "stop": [1647861120]},
	  "right": {"start": [1647861060], "stop": [1647861180]}
	}

The response carries the canonical result in the same array form,
an empty flag when the result contains no time at all, the total
duration of the result, and a job id. Prometheus metrics are
served on /metrics.
*/
package main
