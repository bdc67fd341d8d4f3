package dabbawala_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/danielhkuo/panchayat/dabbawala"
	"github.com/danielhkuo/panchayat/models"
)

var _ = Describe("Tracker", func() {
	var ram *dabbawala.Tracker

	BeforeEach(func() {
		ram = dabbawala.New("Ram", "Dadar")
	})

	Describe("AddDelivery", func() {
		It("returns increasing ids starting at 1", func() {
			Expect(ram.AddDelivery("Andheri", "Churchgate")).To(Equal(1))
			Expect(ram.AddDelivery("Bandra", "CST")).To(Equal(2))
		})

		Context("when an endpoint is empty", func() {
			It("returns -1 and records nothing", func() {
				Expect(ram.AddDelivery("", "CST")).To(Equal(-1))
				Expect(ram.AddDelivery("Bandra", "")).To(Equal(-1))
				Expect(ram.Stats().Total).To(BeZero())
			})
		})
	})

	Describe("CompleteDelivery", func() {
		BeforeEach(func() {
			ram.AddDelivery("Andheri", "Churchgate")
		})

		It("completes a pending delivery once", func() {
			Expect(ram.CompleteDelivery(1)).To(BeTrue())
			Expect(ram.CompleteDelivery(1)).To(BeFalse())
		})

		It("rejects unknown ids", func() {
			Expect(ram.CompleteDelivery(42)).To(BeFalse())
		})
	})

	Describe("ActiveDeliveries", func() {
		It("returns copies of pending deliveries only", func() {
			ram.AddDelivery("Andheri", "Churchgate")
			ram.AddDelivery("Bandra", "CST")
			ram.CompleteDelivery(1)

			active := ram.ActiveDeliveries()
			Expect(active).To(Equal([]models.Delivery{
				{ID: 2, From: "Bandra", To: "CST", Status: models.DeliveryPending},
			}))

			active[0].Status = models.DeliveryCompleted
			Expect(ram.ActiveDeliveries()).To(HaveLen(1))
		})
	})

	Describe("Stats", func() {
		It("reports the success rate", func() {
			ram.AddDelivery("Andheri", "Churchgate")
			ram.AddDelivery("Bandra", "CST")
			ram.CompleteDelivery(1)

			Expect(ram.Stats()).To(Equal(models.DeliveryStats{
				Name:        "Ram",
				Area:        "Dadar",
				Total:       2,
				Completed:   1,
				Pending:     1,
				SuccessRate: "50.00%",
			}))
		})

		Context("when there are no deliveries", func() {
			It("reports 0.00%", func() {
				Expect(ram.Stats().SuccessRate).To(Equal("0.00%"))
			})
		})
	})

	Describe("Reset", func() {
		It("clears deliveries and restarts ids", func() {
			ram.AddDelivery("Andheri", "Churchgate")
			ram.AddDelivery("Bandra", "CST")

			Expect(ram.Reset()).To(BeTrue())
			Expect(ram.Stats().Total).To(BeZero())
			Expect(ram.ActiveDeliveries()).To(BeEmpty())
			Expect(ram.AddDelivery("Dadar", "Worli")).To(Equal(1))
		})
	})

	It("keeps trackers independent", func() {
		shyam := dabbawala.New("Shyam", "Borivali")
		ram.AddDelivery("Andheri", "Churchgate")

		Expect(shyam.Stats().Total).To(BeZero())
		Expect(shyam.AddDelivery("Borivali", "Churchgate")).To(Equal(1))
	})
})
