package catalog

import "github.com/longdzai22/KolConnection/pkg/model"

// DefaultJobs is the fallback dataset used when no jobs file is configured.
func DefaultJobs() []model.Job {
	return []model.Job{
		{
			ID:       "rv-sales-001",
			Title:    "[Nam] Nhân viên Kinh doanh khối KH Khu Công Nghiệp Nhật Bản",
			Company:  "Công ty RAVI",
			Location: "Hà Nội",
			Salary:   "Up to 15 triệu + thưởng nóng",
			Type:     "Toàn thời gian",
			Category: "sales",
			PostedAt: "3 ngày trước",
			Description: []string{
				"Tìm kiếm, mở rộng tệp khách hàng khu công nghiệp Nhật Bản.",
				"Tư vấn giải pháp, đàm phán ký kết hợp đồng.",
				"Quản lý pipeline, theo dõi công nợ và chăm sóc sau bán.",
			},
			Requirements: []string{
				"Nam, tốt nghiệp CĐ/ĐH, ưu tiên biết tiếng Nhật/N2 trở lên.",
				"Kinh nghiệm sales B2B 1 năm+, ưu tiên ngành công nghiệp.",
				"Giao tiếp tốt, chịu được áp lực, sẵn sàng di chuyển.",
			},
			Benefits: []string{
				"Lương cứng + % hoa hồng + thưởng nóng theo doanh số.",
				"BHXH, nghỉ phép, lộ trình thăng tiến rõ ràng.",
				"Đào tạo kỹ năng sales, phụ cấp điện thoại/đi lại.",
			},
			Contact: &model.Contact{Name: "Phòng Nhân sự", Email: "hr@ravi.vn", Phone: "024-1234-5678"},
		},
		{
			ID:           "hz-sale-002",
			Title:        "Nhân viên Sale/Trực Page",
			Company:      "HAZALY",
			Location:     "Hồ Chí Minh",
			Salary:       "7 - 12 triệu + KPI",
			Type:         "Toàn thời gian",
			Category:     "sales",
			PostedAt:     "Hôm nay",
			Description:  []string{"Tư vấn khách hàng qua inbox, chốt đơn, chăm sóc sau bán."},
			Requirements: []string{"Có kinh nghiệm trực page là lợi thế."},
			Benefits:     []string{"Lương cơ bản + thưởng KPI, môi trường năng động."},
		},
	}
}
