package main

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	uuid "github.com/satori/go.uuid"

	traffic "github.com/xoolive/traffic-rs"
)

type options struct {
	Addr string `long:"bind-address" short:"b" description:"The address to listen on for HTTP requests" default:":8094" env:"BIND_ADDRESS"`
}

var (
	opsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "trafficd",
		Name:      "operations_total",
		Help:      "Number of interval operations processed.",
	}, []string{"op"})
	opDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Namespace: "trafficd",
		Name:      "operation_duration_seconds",
		Help:      "Time spent computing interval operations.",
	})
)

func init() {
	prometheus.MustRegister(opsTotal, opDuration)
}

func main() {
	option := &options{}
	parser := flags.NewParser(option, flags.Default)
	parser.ShortDescription = `TRAFFICD`
	parser.LongDescription = `Options for the TRAFFICD server`

	if _, err := parser.Parse(); err != nil {
		code := 1
		if fe, ok := err.(*flags.Error); ok {
			if fe.Type == flags.ErrHelp {
				code = 0
			}
		}
		os.Exit(code)
	}

	http.Handle("/metrics", promhttp.Handler())
	http.Handle("/intervals", http.HandlerFunc(HandleIntervals))

	log.Printf("Starting on %s\n", option.Addr)
	log.Fatal(http.ListenAndServe(option.Addr, nil))
}

type request struct {
	Op    traffic.Op  `json:"op"`
	Left  traffic.Set `json:"left"`
	Right traffic.Set `json:"right"`
}

type response struct {
	ID            string      `json:"id"`
	Op            traffic.Op  `json:"op"`
	Result        traffic.Set `json:"result"`
	Empty         bool        `json:"empty"`
	TotalDuration string      `json:"total_duration"`
}

func HandleIntervals(w http.ResponseWriter, req *http.Request) {
	if req.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		w.Write([]byte("must POST an operation request"))
		return
	}

	var r request
	if err := json.NewDecoder(req.Body).Decode(&r); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(fmt.Sprintf("Error decoding request %s", err.Error())))
		return
	}

	left, err := r.Left.Collection()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(fmt.Sprintf("Error reading left operand %s", err.Error())))
		return
	}
	right, err := r.Right.Collection()
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(fmt.Sprintf("Error reading right operand %s", err.Error())))
		return
	}

	start := time.Now()
	res, ok, err := traffic.Apply(r.Op, left, right)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(fmt.Sprintf("Error applying operation %s", err.Error())))
		return
	}
	opDuration.Observe(time.Since(start).Seconds())
	opsTotal.WithLabelValues(string(r.Op)).Inc()

	resp := response{
		ID:    uuid.NewV4().String(),
		Op:    r.Op,
		Empty: !ok,
	}
	if ok {
		resp.Result = traffic.SetOf(res)
		resp.TotalDuration = res.TotalDuration().String()
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Println("Error:", err)
	}
}
