package clprovision_test

import (
	"github.com/crewlinker/clinfra/clprovision"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var _ = Describe("state", func() {
	var st *clprovision.State

	BeforeEach(func() {
		st = clprovision.NewState()
		st.NetworkID = "vpc-1"
		st.InstanceIDs = []string{"i-1"}
		st.Instances["master-node-01"] = "i-1"
	})

	DescribeTable("lookup", func(key, exp string) {
		Expect(st.Lookup(key)).To(Equal(exp))
	},
		Entry("network", clprovision.KeyNetworkID, "vpc-1"),
		Entry("unset gateway", clprovision.KeyGatewayID, ""),
		Entry("named instance", clprovision.InstanceKey("master-node-01"), "i-1"),
		Entry("unknown instance", clprovision.InstanceKey("worker-node-09"), ""),
		Entry("unknown key", "bogus", ""),
	)

	It("should encode for logging", func() {
		enc := zapcore.NewMapObjectEncoder()
		Expect(st.MarshalLogObject(enc)).To(Succeed())
		Expect(enc.Fields).To(HaveKeyWithValue("network_id", "vpc-1"))
		Expect(enc.Fields).To(HaveKeyWithValue("instances", map[string]any{"master-node-01": "i-1"}))
	})

	It("should encode instances in launch order", func() {
		for _, name := range []string{"worker-node-02", "worker-node-10", "worker-node-01"} {
			id := "i-" + name
			st.InstanceIDs = append(st.InstanceIDs, id)
			st.Instances[name] = id
		}

		enc := zapcore.NewJSONEncoder(zapcore.EncoderConfig{MessageKey: "msg"})
		for range 5 {
			buf, err := enc.EncodeEntry(zapcore.Entry{Message: "done"}, []zapcore.Field{zap.Object("state", st)})
			Expect(err).ToNot(HaveOccurred())
			Expect(buf.String()).To(ContainSubstring(`"instances":{` +
				`"master-node-01":"i-1",` +
				`"worker-node-02":"i-worker-node-02",` +
				`"worker-node-10":"i-worker-node-10",` +
				`"worker-node-01":"i-worker-node-01"}`))
			buf.Free()
		}
	})
})
