package clprovision_test

import (
	"github.com/caarlos0/env/v10"
	"github.com/crewlinker/clinfra/clconfig"
	"github.com/crewlinker/clinfra/clprovision"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("config", func() {
	It("should default to the wecloud environment", func() {
		cfg, err := clconfig.Parse[clprovision.Config](env.Options{Environment: map[string]string{}}, "CLPROVISION_")
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.NetworkCIDR).To(Equal("10.0.0.0/16"))
		Expect(cfg.SubnetCIDR).To(Equal("10.0.0.0/24"))
		Expect(cfg.MasterInstanceType).To(Equal("t2.small"))
		Expect(cfg.WorkerInstanceType).To(Equal("t2.micro"))
		Expect(cfg.MasterNames).To(Equal([]string{"master-node-01"}))
		Expect(cfg.WorkerNames).To(Equal([]string{"worker-node-01", "worker-node-02"}))
		Expect(cfg.UserData).To(BeEmpty())
	})

	It("should read overrides from the environment", func() {
		cfg, err := clconfig.Parse[clprovision.Config](env.Options{Environment: map[string]string{
			"CLPROVISION_WORKER_NAMES":         "w1,w2,w3",
			"CLPROVISION_WORKER_INSTANCE_TYPE": "t3.micro",
		}}, "CLPROVISION_")
		Expect(err).ToNot(HaveOccurred())
		Expect(cfg.WorkerNames).To(HaveLen(3))
		Expect(cfg.WorkerInstanceType).To(Equal("t3.micro"))
	})

	Describe("user data", func() {
		It("should use the embedded bootstrap script", func() {
			cfg, err := clprovision.WithUserData(clprovision.Config{})
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.UserData).To(Equal(clprovision.Bootstrap))
			Expect(cfg.UserData).To(HavePrefix("#!/bin/bash -ex\n"))
			Expect(cfg.UserData).To(ContainSubstring("echo END"))
		})

		It("should read a configured script", func() {
			cfg, err := clprovision.WithUserData(clprovision.Config{UserDataFile: "testdata/custom.sh"})
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.UserData).To(Equal("#!/bin/bash\necho custom\n"))
		})

		It("should keep a script that is set directly", func() {
			cfg, err := clprovision.WithUserData(clprovision.Config{UserData: "x", UserDataFile: "testdata/custom.sh"})
			Expect(err).ToNot(HaveOccurred())
			Expect(cfg.UserData).To(Equal("x"))
		})

		It("should fail on a missing script", func() {
			_, err := clprovision.WithUserData(clprovision.Config{UserDataFile: "testdata/missing.sh"})
			Expect(err).To(MatchError(ContainSubstring("failed to read user data file")))
		})
	})
})

var _ = Describe("steps", func() {
	It("should list the steps in their fixed order", func() {
		steps := clprovision.Steps(clprovision.Config{
			MasterNames: []string{"m1"},
			WorkerNames: []string{"w1", "w2"},
		}, nil)

		names := make([]string, 0, len(steps))
		for _, s := range steps {
			names = append(names, s.Name())
		}

		Expect(names).To(Equal([]string{
			"network", "gateway", "subnet", "route", "security-group",
			"instance m1", "instance w1", "instance w2",
		}))
		Expect(steps[3].Consumes()).To(Equal([]string{clprovision.KeyNetworkID, clprovision.KeyGatewayID}))
		Expect(steps[7].Produces()).To(Equal([]string{clprovision.InstanceKey("w2")}))
	})
})
